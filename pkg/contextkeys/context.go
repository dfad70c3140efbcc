package contextkeys

// ContextKey is the type for values shared through gin/request contexts.
type ContextKey string

const (
	// IdentityContextKey holds the *dto.Identity resolved from the session
	// token, set by middleware.SessionAuth.
	IdentityContextKey ContextKey = "identity"

	// RequestIDContextKey holds the per-request correlation id.
	RequestIDContextKey ContextKey = "request_id"
)
