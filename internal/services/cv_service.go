package services

import (
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// CVService manages showcase entries. A CV belongs to the email that created
// it; only that resident or an admin may change it.
type CVService interface {
	Create(actor *dto.Identity, req *dto.CVRequest) (*models.CV, error)
	Update(actor *dto.Identity, id string, req *dto.CVRequest) (*models.CV, error)
	Delete(actor *dto.Identity, id string) error
	Get(id string) (*models.CV, error)
	List(equals map[string]interface{}) ([]models.CV, error)
}

type CVServiceImpl struct {
	cvRepo       repositories.CVStore
	fileHashRepo repositories.FileHashStore
}

func NewCVService(cvRepo repositories.CVStore, fileHashRepo repositories.FileHashStore) CVService {
	return &CVServiceImpl{
		cvRepo:       cvRepo,
		fileHashRepo: fileHashRepo,
	}
}

func (s *CVServiceImpl) Create(actor *dto.Identity, req *dto.CVRequest) (*models.CV, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	// Admins may file a CV on behalf of another resident; everyone else
	// owns what they submit.
	email := actor.Email
	if actor.IsAdmin && req.Email != "" {
		email = normalizeEmail(req.Email)
	}

	cv := &models.CV{
		Name:              strings.TrimSpace(req.Name),
		Email:             email,
		Title:             req.Title,
		Section:           normalizeSection(req.Section),
		Bio:               req.Bio,
		Skills:            req.Skills,
		Experience:        req.Experience,
		Education:         req.Education,
		YearsOfExperience: req.YearsOfExperience,
		Languages:         req.Languages,
		LinkedinURL:       req.LinkedinURL,
	}

	if err := s.cvRepo.Create(cv); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("cv created", "id", cv.ID, "email", cv.Email)
	return cv, nil
}

func (s *CVServiceImpl) Update(actor *dto.Identity, id string, req *dto.CVRequest) (*models.CV, error) {
	cv, err := s.findCV(id)
	if err != nil {
		return nil, err
	}
	if err := requireAdminOrOwner(actor, cv.Email); err != nil {
		return nil, err
	}

	cv.Name = strings.TrimSpace(req.Name)
	cv.Title = req.Title
	cv.Section = normalizeSection(req.Section)
	cv.Bio = req.Bio
	cv.Skills = req.Skills
	cv.Experience = req.Experience
	cv.Education = req.Education
	cv.YearsOfExperience = req.YearsOfExperience
	cv.Languages = req.Languages
	cv.LinkedinURL = req.LinkedinURL

	if err := s.cvRepo.Update(cv); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cv, nil
}

func (s *CVServiceImpl) Delete(actor *dto.Identity, id string) error {
	cv, err := s.findCV(id)
	if err != nil {
		return err
	}
	if err := requireAdminOrOwner(actor, cv.Email); err != nil {
		return err
	}

	if err := s.cvRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	// Free the content hashes so the same file may be attached elsewhere.
	if err := s.fileHashRepo.DeleteByCV(id); err != nil {
		logger.WithError(err).Warn("failed to clear file hashes for deleted cv", "cv_id", id)
	}

	logger.Info("cv deleted", "id", id, "by", actor.Email)
	return nil
}

func (s *CVServiceImpl) Get(id string) (*models.CV, error) {
	return s.findCV(id)
}

func (s *CVServiceImpl) List(equals map[string]interface{}) ([]models.CV, error) {
	cvs, err := s.cvRepo.List(equals)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cvs, nil
}

func (s *CVServiceImpl) findCV(id string) (*models.CV, error) {
	cv, err := s.cvRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCVNotFound) {
			return nil, apperrors.ErrNotFound(err, "cv")
		}
		return nil, apperrors.InternalError(err)
	}
	return cv, nil
}

// normalizeSection maps a declared section onto the fixed category list;
// anything unrecognized is kept verbatim as a free-text section.
func normalizeSection(section string) string {
	trimmed := strings.TrimSpace(section)
	for _, known := range models.CVSections {
		if strings.EqualFold(trimmed, known) {
			return known
		}
	}
	return trimmed
}
