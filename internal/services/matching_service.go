package services

import (
	"math"
	"sort"
	"strings"

	"jobboard_backend/internal/algorithms"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

const (
	// matchDisplayScale turns the [0,1] overlap score into the 0-100 value
	// shown to users.
	matchDisplayScale = 100

	// matchScoreCutoff drops weak recommendations: jobs scoring at or below
	// this display value are not returned. Tunable, kept for compatibility
	// with stored expectations.
	matchScoreCutoff = 30
)

type MatchingService interface {
	MatchJobsForCV(cvID string) ([]dto.ScoredJob, error)
}

type MatchingServiceImpl struct {
	cvRepo      repositories.CVStore
	postingRepo repositories.PostingStore
}

func NewMatchingService(cvRepo repositories.CVStore, postingRepo repositories.PostingStore) MatchingService {
	return &MatchingServiceImpl{
		cvRepo:      cvRepo,
		postingRepo: postingRepo,
	}
}

// MatchJobsForCV scores every visible job against the CV's keyword set and
// returns the jobs above the cutoff, highest score first. Equal scores keep
// the listing order (most recent job first).
func (s *MatchingServiceImpl) MatchJobsForCV(cvID string) ([]dto.ScoredJob, error) {
	cv, err := s.cvRepo.FindByID(cvID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCVNotFound) {
			return nil, apperrors.ErrNotFound(err, "cv")
		}
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.postingRepo.List(repositories.PostingFilter{
		Type:        models.PostingTypeJob,
		VisibleOnly: true,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cvKeywords := algorithms.ExtractKeywords(strings.Join([]string{
		cv.Name, cv.Title, cv.Section, cv.Bio, cv.Skills,
	}, " "))

	scored := make([]dto.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		jobKeywords := algorithms.ExtractKeywords(strings.Join([]string{
			job.Title, job.Industry, job.Skills, job.Description, job.Requirements,
		}, " "))

		score := int(math.Round(algorithms.MatchScore(cvKeywords, jobKeywords) * matchDisplayScale))
		if score <= matchScoreCutoff {
			continue
		}
		scored = append(scored, dto.ScoredJob{Posting: job, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}
