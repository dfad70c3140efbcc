package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWhitelistEntryNotFound = errors.New("whitelist entry not found")
	ErrWhitelistEntryExists   = errors.New("whitelist entry already exists")
)

type WhitelistStore interface {
	Create(entry *models.WhitelistEntry) error
	FindByEmail(email string) (*models.WhitelistEntry, error)
	Update(entry *models.WhitelistEntry) error
	Delete(email string) error
	List() ([]models.WhitelistEntry, error)
}

type WhitelistRepositoryImpl struct {
	db *gorm.DB
}

func NewWhitelistRepository(db *gorm.DB) WhitelistStore {
	return &WhitelistRepositoryImpl{db: db}
}

func (r *WhitelistRepositoryImpl) Create(entry *models.WhitelistEntry) error {
	var existing models.WhitelistEntry
	if err := r.db.Where("email = ?", entry.Email).First(&existing).Error; err == nil {
		return ErrWhitelistEntryExists
	}
	return r.db.Create(entry).Error
}

func (r *WhitelistRepositoryImpl) FindByEmail(email string) (*models.WhitelistEntry, error) {
	var entry models.WhitelistEntry
	err := r.db.First(&entry, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWhitelistEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WhitelistRepositoryImpl) Update(entry *models.WhitelistEntry) error {
	return r.db.Save(entry).Error
}

func (r *WhitelistRepositoryImpl) Delete(email string) error {
	result := r.db.Delete(&models.WhitelistEntry{}, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWhitelistEntryNotFound
	}
	return nil
}

func (r *WhitelistRepositoryImpl) List() ([]models.WhitelistEntry, error) {
	var entries []models.WhitelistEntry
	if err := r.db.Order("email ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
