package services

import (
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// requireAdmin is the shared authorization gate for moderation operations:
// anonymous callers get an authentication error, authenticated non-admins a
// permission error.
func requireAdmin(actor *dto.Identity) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if !actor.IsAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}

// requireAdminOrOwner allows admins and the identified owner email through.
func requireAdminOrOwner(actor *dto.Identity, ownerEmail string) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if actor.IsAdmin {
		return nil
	}
	if ownerEmail != "" && actor.Email == ownerEmail {
		return nil
	}
	return apperrors.ErrForbidden
}
