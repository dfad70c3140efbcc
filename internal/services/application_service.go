package services

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// ApplicationService links applicants to postings. Submission is open;
// status changes are admin-only.
type ApplicationService interface {
	Submit(req *dto.SubmitApplicationRequest) (*models.Application, error)
	UpdateStatus(actor *dto.Identity, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	ListForPosting(actor *dto.Identity, postingType models.PostingType, postingID string) ([]models.Application, error)
	ListByEmail(actor *dto.Identity, email string) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationStore
	postingRepo     repositories.PostingStore
}

func NewApplicationService(
	applicationRepo repositories.ApplicationStore,
	postingRepo repositories.PostingStore,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		postingRepo:     postingRepo,
	}
}

// Submit creates a pending application against exactly one of a job or an
// internship.
func (s *ApplicationServiceImpl) Submit(req *dto.SubmitApplicationRequest) (*models.Application, error) {
	hasJob := req.JobID != nil && *req.JobID != ""
	hasInternship := req.InternshipID != nil && *req.InternshipID != ""
	if hasJob == hasInternship {
		return nil, apperrors.ValidationError(map[string]string{
			"posting": "exactly one of job_id or internship_id must be set",
		})
	}

	postingID := req.InternshipID
	wantType := models.PostingTypeInternship
	if hasJob {
		postingID = req.JobID
		wantType = models.PostingTypeJob
	}

	posting, err := s.postingRepo.FindByID(*postingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.ErrNotFound(err, "posting")
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.Type != wantType || !posting.Visible() {
		return nil, apperrors.ErrNotFound(repositories.ErrPostingNotFound, "posting")
	}

	app := &models.Application{
		JobID:          req.JobID,
		InternshipID:   req.InternshipID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: normalizeEmail(req.ApplicantEmail),
		CVID:           req.CVID,
		Status:         models.ApplicationStatusPending,
		Notes:          req.Notes,
	}
	if len(req.Answers) > 0 {
		app.Answers = datatypes.JSON(req.Answers)
	}

	if err := s.applicationRepo.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application submitted", "id", app.ID, "posting_id", *postingID)
	return app, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(actor *dto.Identity, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application")
		}
		return nil, apperrors.InternalError(err)
	}

	app.Status = req.Status
	if req.Notes != "" {
		app.Notes = req.Notes
	}
	if err := s.applicationRepo.Update(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application status updated", "id", app.ID, "status", app.Status, "by", actor.Email)
	return app, nil
}

func (s *ApplicationServiceImpl) ListForPosting(actor *dto.Identity, postingType models.PostingType, postingID string) ([]models.Application, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var (
		apps []models.Application
		err  error
	)
	switch postingType {
	case models.PostingTypeInternship:
		apps, err = s.applicationRepo.ListByInternship(postingID)
	default:
		apps, err = s.applicationRepo.ListByJob(postingID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ListByEmail lets an applicant review their own submissions; admins may
// query anyone's.
func (s *ApplicationServiceImpl) ListByEmail(actor *dto.Identity, email string) ([]models.Application, error) {
	if err := requireAdminOrOwner(actor, normalizeEmail(email)); err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByEmail(normalizeEmail(email))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}
