package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles the constructed handlers for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Posting     *PostingHandler
	Matching    *MatchingHandler
	CV          *CVHandler
	Whitelist   *WhitelistHandler
	Application *ApplicationHandler
	Upload      *UploadHandler
	File        *FileHandler
}

func NewAppHandlers(svcs *services.ServiceContainer, store storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, svcs.AuthService),
		Posting:     NewPostingHandler(base, svcs.PostingService),
		Matching:    NewMatchingHandler(base, svcs.MatchingService),
		CV:          NewCVHandler(base, svcs.CVService, svcs.UploadService),
		Whitelist:   NewWhitelistHandler(base, svcs.WhitelistService),
		Application: NewApplicationHandler(base, svcs.ApplicationService),
		Upload:      NewUploadHandler(base, svcs.UploadService),
		File:        NewFileHandler(store),
	}
}
