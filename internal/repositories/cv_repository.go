package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCVNotFound = errors.New("cv not found")

var cvFilterColumns = map[string]bool{
	"section":             true,
	"email":               true,
	"title":               true,
	"years_of_experience": true,
}

type CVStore interface {
	Create(cv *models.CV) error
	FindByID(id string) (*models.CV, error)
	FindByEmail(email string) ([]models.CV, error)
	Update(cv *models.CV) error
	Delete(id string) error
	List(equals map[string]interface{}) ([]models.CV, error)
}

type CVRepositoryImpl struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) CVStore {
	return &CVRepositoryImpl{db: db}
}

func (r *CVRepositoryImpl) Create(cv *models.CV) error {
	return r.db.Create(cv).Error
}

func (r *CVRepositoryImpl) FindByID(id string) (*models.CV, error) {
	var cv models.CV
	err := r.db.First(&cv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCVNotFound
		}
		return nil, err
	}
	return &cv, nil
}

func (r *CVRepositoryImpl) FindByEmail(email string) ([]models.CV, error) {
	var cvs []models.CV
	if err := r.db.Where("email = ?", email).Find(&cvs).Error; err != nil {
		return nil, err
	}
	return cvs, nil
}

func (r *CVRepositoryImpl) Update(cv *models.CV) error {
	return r.db.Save(cv).Error
}

func (r *CVRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.CV{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCVNotFound
	}
	return nil
}

func (r *CVRepositoryImpl) List(equals map[string]interface{}) ([]models.CV, error) {
	query := r.db.Model(&models.CV{})
	for field, value := range equals {
		if cvFilterColumns[field] {
			query = query.Where(field+" = ?", value)
		}
	}

	var cvs []models.CV
	if err := query.Find(&cvs).Error; err != nil {
		return nil, err
	}
	return cvs, nil
}
