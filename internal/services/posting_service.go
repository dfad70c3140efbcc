package services

import (
	"strings"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// PostingService drives the moderation lifecycle:
//
//	submit -> pending -> approve -> approved/active
//	                  -> reject  -> rejected
//	approved/active -> delete  -> archived (row moved)
//	archived        -> restore -> approved/active (new id)
//	archived        -> purge   -> gone
type PostingService interface {
	Submit(actor *dto.Identity, req *dto.SubmitPostingRequest) (*models.Posting, error)
	Approve(actor *dto.Identity, id string) (*models.Posting, error)
	Reject(actor *dto.Identity, id string) (*models.Posting, error)
	Delete(actor *dto.Identity, id, reason string) error
	Restore(actor *dto.Identity, archiveID string) (*models.Posting, error)
	Purge(actor *dto.Identity, archiveID string) error
	List(actor *dto.Identity, postingType models.PostingType, equals map[string]interface{}) ([]models.Posting, error)
	ListArchive(actor *dto.Identity, postingType models.PostingType) ([]models.ArchivedPosting, error)
}

type PostingServiceImpl struct {
	postingRepo repositories.PostingStore
	archiveRepo repositories.ArchiveStore
	notifier    ModerationNotifier
}

func NewPostingService(
	postingRepo repositories.PostingStore,
	archiveRepo repositories.ArchiveStore,
	notifier ModerationNotifier,
) PostingService {
	return &PostingServiceImpl{
		postingRepo: postingRepo,
		archiveRepo: archiveRepo,
		notifier:    notifier,
	}
}

// Submit accepts a public submission and parks it in pending state until an
// admin moderates it.
func (s *PostingServiceImpl) Submit(actor *dto.Identity, req *dto.SubmitPostingRequest) (*models.Posting, error) {
	if details := validateSubmission(req); len(details) > 0 {
		return nil, apperrors.ValidationError(details)
	}

	posting := &models.Posting{
		Type:         req.Type,
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Industry:     req.Industry,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		ContactEmail: strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		Duration:     req.Duration,
		Status:       models.PostingStatusPending,
		IsApproved:   false,
		IsActive:     true,
	}
	if actor != nil {
		posting.PostedBy = actor.Email
	}

	if err := s.postingRepo.Create(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("posting submitted", "id", posting.ID, "type", posting.Type, "title", posting.Title)
	s.notify(EventPostingSubmitted, posting)
	return posting, nil
}

// Approve marks the posting visible. Approving an already-approved posting
// is a no-op success.
func (s *PostingServiceImpl) Approve(actor *dto.Identity, id string) (*models.Posting, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	posting, err := s.findPosting(id)
	if err != nil {
		return nil, err
	}

	if posting.IsApproved && posting.Status == models.PostingStatusApproved {
		return posting, nil
	}

	posting.Status = models.PostingStatusApproved
	posting.IsApproved = true
	posting.UpdatedAt = time.Now()
	if err := s.postingRepo.Update(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("posting approved", "id", posting.ID, "by", actor.Email)
	s.notify(EventPostingApproved, posting)
	return posting, nil
}

// Reject marks the posting rejected but keeps the row queryable for audit.
func (s *PostingServiceImpl) Reject(actor *dto.Identity, id string) (*models.Posting, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	posting, err := s.findPosting(id)
	if err != nil {
		return nil, err
	}

	posting.Status = models.PostingStatusRejected
	posting.IsApproved = false
	posting.UpdatedAt = time.Now()
	if err := s.postingRepo.Update(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("posting rejected", "id", posting.ID, "by", actor.Email)
	s.notify(EventPostingRejected, posting)
	return posting, nil
}

// Delete moves the posting into the archive. The copy and the row removal
// run in one transaction; re-invoking after a failure is safe from either
// state.
func (s *PostingServiceImpl) Delete(actor *dto.Identity, id, reason string) error {
	posting, err := s.findPosting(id)
	if err != nil {
		return err
	}
	if err := requireAdminOrOwner(actor, posting.PostedBy); err != nil {
		return err
	}

	archived := &models.ArchivedPosting{
		OriginalID:        posting.ID,
		OriginalCreatedAt: posting.CreatedAt,
		Type:              posting.Type,
		Title:             posting.Title,
		Company:           posting.Company,
		Industry:          posting.Industry,
		Location:          posting.Location,
		Description:       posting.Description,
		Requirements:      posting.Requirements,
		Skills:            posting.Skills,
		ContactEmail:      posting.ContactEmail,
		Duration:          posting.Duration,
		PostedBy:          posting.PostedBy,
		RemovedAt:         time.Now(),
		RemovedBy:         actor.Email,
		RemovalReason:     reason,
	}

	if err := s.postingRepo.MoveToArchive(posting, archived); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("posting archived", "id", posting.ID, "archive_id", archived.ID, "by", actor.Email)
	s.notify(EventPostingDeleted, posting)
	return nil
}

// Restore re-creates a fresh posting from the archived fields and drops the
// archive row. The new posting is immediately visible.
func (s *PostingServiceImpl) Restore(actor *dto.Identity, archiveID string) (*models.Posting, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	archived, err := s.findArchived(archiveID)
	if err != nil {
		return nil, err
	}

	posting := &models.Posting{
		Type:         archived.Type,
		Title:        archived.Title,
		Company:      archived.Company,
		Industry:     archived.Industry,
		Location:     archived.Location,
		Description:  archived.Description,
		Requirements: archived.Requirements,
		Skills:       archived.Skills,
		ContactEmail: archived.ContactEmail,
		Duration:     archived.Duration,
		PostedBy:     archived.PostedBy,
		Status:       models.PostingStatusActive,
		IsApproved:   true,
		IsActive:     true,
	}
	if !archived.OriginalCreatedAt.IsZero() {
		posting.CreatedAt = archived.OriginalCreatedAt
	}

	if err := s.postingRepo.RestoreFromArchive(archived, posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("posting restored", "archive_id", archiveID, "id", posting.ID, "by", actor.Email)
	return posting, nil
}

// Purge drops the archive row permanently.
func (s *PostingServiceImpl) Purge(actor *dto.Identity, archiveID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if err := s.archiveRepo.Delete(archiveID); err != nil {
		if apperrors.Is(err, repositories.ErrArchiveNotFound) {
			return apperrors.ErrNotFound(err, "archive")
		}
		return apperrors.InternalError(err)
	}

	logger.Info("archived posting purged", "archive_id", archiveID, "by", actor.Email)
	return nil
}

// List returns postings matching the equality filters. Non-admin callers
// only ever see active approved rows.
func (s *PostingServiceImpl) List(actor *dto.Identity, postingType models.PostingType, equals map[string]interface{}) ([]models.Posting, error) {
	filter := repositories.PostingFilter{
		Type:        postingType,
		Equals:      equals,
		VisibleOnly: actor == nil || !actor.IsAdmin,
	}

	postings, err := s.postingRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return postings, nil
}

func (s *PostingServiceImpl) ListArchive(actor *dto.Identity, postingType models.PostingType) ([]models.ArchivedPosting, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	archived, err := s.archiveRepo.List(postingType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return archived, nil
}

func (s *PostingServiceImpl) findPosting(id string) (*models.Posting, error) {
	posting, err := s.postingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.ErrNotFound(err, "posting")
		}
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}

func (s *PostingServiceImpl) findArchived(id string) (*models.ArchivedPosting, error) {
	archived, err := s.archiveRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArchiveNotFound) {
			return nil, apperrors.ErrNotFound(err, "archive")
		}
		return nil, apperrors.InternalError(err)
	}
	return archived, nil
}

func (s *PostingServiceImpl) notify(event string, posting *models.Posting) {
	if s.notifier != nil {
		s.notifier.NotifyModeration(event, posting)
	}
}

// validateSubmission enforces the per-type required fields.
func validateSubmission(req *dto.SubmitPostingRequest) map[string]string {
	details := make(map[string]string)

	if strings.TrimSpace(req.Title) == "" {
		details["title"] = "title is required"
	}

	switch req.Type {
	case models.PostingTypeJob, models.PostingTypeInternship:
		if strings.TrimSpace(req.Company) == "" {
			details["company"] = "company is required"
		}
		if strings.TrimSpace(req.ContactEmail) == "" {
			details["contact_email"] = "contact email is required"
		}
	case models.PostingTypeCourse:
		if strings.TrimSpace(req.Company) == "" {
			details["company"] = "instructor is required"
		}
		if strings.TrimSpace(req.Description) == "" {
			details["description"] = "description is required"
		}
	default:
		details["type"] = "type must be one of job, internship, course"
	}

	return details
}
