package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationStore interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	Update(app *models.Application) error
	ListByJob(jobID string) ([]models.Application, error)
	ListByInternship(internshipID string) ([]models.Application, error)
	ListByEmail(email string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationStore {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) ListByInternship(internshipID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Where("internship_id = ?", internshipID).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) ListByEmail(email string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Where("applicant_email = ?", email).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}
