package dto

import "jobboard_backend/internal/models"

// Identity is the caller resolved from a session token. A nil *Identity
// means anonymous.
type Identity struct {
	Email   string       `json:"email"`
	IsAdmin bool         `json:"is_admin"`
	User    *models.User `json:"user"`
}
