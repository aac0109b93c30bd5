package repositories

import (
	"campus_backend/internal/models"

	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(registration *models.StudentRegistration) error
	FindAll() ([]models.StudentRegistration, error)
}

type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

func (r *RegistrationRepositoryImpl) Create(registration *models.StudentRegistration) error {
	return r.db.Create(registration).Error
}

func (r *RegistrationRepositoryImpl) FindAll() ([]models.StudentRegistration, error) {
	var registrations []models.StudentRegistration
	err := r.db.Order("id").Find(&registrations).Error
	return registrations, err
}
