package services

// ServiceContainer bundles the constructed services for handler wiring.
type ServiceContainer struct {
	AuthService        AuthService
	PostingService     PostingService
	MatchingService    MatchingService
	WhitelistService   WhitelistService
	CVService          CVService
	ApplicationService ApplicationService
	UploadService      UploadService
}
