package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUploadNotFound   = errors.New("upload not found")
	ErrFileHashNotFound = errors.New("file hash not found")
)

type UploadStore interface {
	Create(upload *models.Upload) error
	FindByID(id string) (*models.Upload, error)
	Update(upload *models.Upload) error
	Delete(id string) error
}

// FileHashStore persists the content-hash registry behind duplicate-file
// detection, keyed by sha256.
type FileHashStore interface {
	Find(hash string) (*models.FileHash, error)
	Create(fh *models.FileHash) error
	DeleteByCV(cvID string) error
}

type UploadRepositoryImpl struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadStore {
	return &UploadRepositoryImpl{db: db}
}

func (r *UploadRepositoryImpl) Create(upload *models.Upload) error {
	return r.db.Create(upload).Error
}

func (r *UploadRepositoryImpl) FindByID(id string) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.First(&upload, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) Update(upload *models.Upload) error {
	return r.db.Save(upload).Error
}

func (r *UploadRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Upload{}, "id = ?", id).Error
}

type FileHashRepositoryImpl struct {
	db *gorm.DB
}

func NewFileHashRepository(db *gorm.DB) FileHashStore {
	return &FileHashRepositoryImpl{db: db}
}

func (r *FileHashRepositoryImpl) Find(hash string) (*models.FileHash, error) {
	var fh models.FileHash
	err := r.db.First(&fh, "hash = ?", hash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileHashNotFound
		}
		return nil, err
	}
	return &fh, nil
}

func (r *FileHashRepositoryImpl) Create(fh *models.FileHash) error {
	return r.db.Create(fh).Error
}

func (r *FileHashRepositoryImpl) DeleteByCV(cvID string) error {
	return r.db.Delete(&models.FileHash{}, "cv_id = ?", cvID).Error
}
