package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPostingNotFound = errors.New("posting not found")
	ErrArchiveNotFound = errors.New("archived posting not found")
)

// PostingFilter narrows listings. Equals carries exact-match field/value
// pairs only; ranges and full-text search are not supported.
type PostingFilter struct {
	Type        models.PostingType
	Equals      map[string]interface{}
	VisibleOnly bool
}

// postingFilterColumns is the set of columns callers may filter on.
// Anything else in Equals is ignored rather than interpolated into SQL.
var postingFilterColumns = map[string]bool{
	"status":      true,
	"is_active":   true,
	"is_approved": true,
	"company":     true,
	"industry":    true,
	"location":    true,
	"posted_by":   true,
	"title":       true,
}

type PostingStore interface {
	Create(p *models.Posting) error
	FindByID(id string) (*models.Posting, error)
	Update(p *models.Posting) error
	List(filter PostingFilter) ([]models.Posting, error)

	// MoveToArchive inserts the archive row and deletes the posting inside
	// one transaction, so a failed archive write never strands a deleted
	// original.
	MoveToArchive(p *models.Posting, a *models.ArchivedPosting) error

	// RestoreFromArchive inserts the rebuilt posting and deletes the archive
	// row inside one transaction.
	RestoreFromArchive(a *models.ArchivedPosting, p *models.Posting) error
}

type PostingRepositoryImpl struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) PostingStore {
	return &PostingRepositoryImpl{db: db}
}

func (r *PostingRepositoryImpl) Create(p *models.Posting) error {
	return r.db.Create(p).Error
}

func (r *PostingRepositoryImpl) FindByID(id string) (*models.Posting, error) {
	var posting models.Posting
	err := r.db.First(&posting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

func (r *PostingRepositoryImpl) Update(p *models.Posting) error {
	return r.db.Save(p).Error
}

func (r *PostingRepositoryImpl) List(filter PostingFilter) ([]models.Posting, error) {
	query := r.db.Model(&models.Posting{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.VisibleOnly {
		query = query.Where("is_active = ? AND is_approved = ?", true, true)
	}
	for field, value := range filter.Equals {
		if postingFilterColumns[field] {
			query = query.Where(field+" = ?", value)
		}
	}

	// Job listings read most-recent-first; other types keep storage order.
	if filter.Type == models.PostingTypeJob {
		query = query.Order("created_at DESC")
	}

	var postings []models.Posting
	if err := query.Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

func (r *PostingRepositoryImpl) MoveToArchive(p *models.Posting, a *models.ArchivedPosting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Posting{}, "id = ?", p.ID).Error
	})
}

func (r *PostingRepositoryImpl) RestoreFromArchive(a *models.ArchivedPosting, p *models.Posting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ArchivedPosting{}, "id = ?", a.ID).Error
	})
}
