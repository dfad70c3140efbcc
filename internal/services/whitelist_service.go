package services

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// WhitelistService manages the resident whitelist. All operations are
// admin-only; emails are stored lower-cased.
type WhitelistService interface {
	Add(actor *dto.Identity, req *dto.WhitelistAddRequest) (*models.WhitelistEntry, error)
	Remove(actor *dto.Identity, email string) error
	SetActive(actor *dto.Identity, email string, active bool) (*models.WhitelistEntry, error)
	List(actor *dto.Identity) ([]models.WhitelistEntry, error)
}

type WhitelistServiceImpl struct {
	whitelistRepo repositories.WhitelistStore
}

func NewWhitelistService(whitelistRepo repositories.WhitelistStore) WhitelistService {
	return &WhitelistServiceImpl{whitelistRepo: whitelistRepo}
}

func (s *WhitelistServiceImpl) Add(actor *dto.Identity, req *dto.WhitelistAddRequest) (*models.WhitelistEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	entry := &models.WhitelistEntry{
		Email:    normalizeEmail(req.Email),
		Name:     req.Name,
		Unit:     req.Unit,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := s.whitelistRepo.Create(entry); err != nil {
		if apperrors.Is(err, repositories.ErrWhitelistEntryExists) {
			return nil, apperrors.ErrWhitelistDuplicate
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("whitelist entry added", "email", entry.Email, "by", actor.Email)
	return entry, nil
}

func (s *WhitelistServiceImpl) Remove(actor *dto.Identity, email string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if err := s.whitelistRepo.Delete(normalizeEmail(email)); err != nil {
		if apperrors.Is(err, repositories.ErrWhitelistEntryNotFound) {
			return apperrors.ErrNotFound(err, "whitelist")
		}
		return apperrors.InternalError(err)
	}

	logger.Info("whitelist entry removed", "email", email, "by", actor.Email)
	return nil
}

func (s *WhitelistServiceImpl) SetActive(actor *dto.Identity, email string, active bool) (*models.WhitelistEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	entry, err := s.whitelistRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrWhitelistEntryNotFound) {
			return nil, apperrors.ErrNotFound(err, "whitelist")
		}
		return nil, apperrors.InternalError(err)
	}

	entry.IsActive = active
	if err := s.whitelistRepo.Update(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *WhitelistServiceImpl) List(actor *dto.Identity) ([]models.WhitelistEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	entries, err := s.whitelistRepo.List()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}
