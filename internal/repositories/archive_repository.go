package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type ArchiveStore interface {
	FindByID(id string) (*models.ArchivedPosting, error)
	List(postingType models.PostingType) ([]models.ArchivedPosting, error)
	Delete(id string) error
}

type ArchiveRepositoryImpl struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveStore {
	return &ArchiveRepositoryImpl{db: db}
}

func (r *ArchiveRepositoryImpl) FindByID(id string) (*models.ArchivedPosting, error) {
	var archived models.ArchivedPosting
	err := r.db.First(&archived, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArchiveNotFound
		}
		return nil, err
	}
	return &archived, nil
}

func (r *ArchiveRepositoryImpl) List(postingType models.PostingType) ([]models.ArchivedPosting, error) {
	query := r.db.Model(&models.ArchivedPosting{}).Order("removed_at DESC")
	if postingType != "" {
		query = query.Where("type = ?", postingType)
	}

	var archived []models.ArchivedPosting
	if err := query.Find(&archived).Error; err != nil {
		return nil, err
	}
	return archived, nil
}

func (r *ArchiveRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.ArchivedPosting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArchiveNotFound
	}
	return nil
}
