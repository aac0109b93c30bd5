package repositories

import (
	"errors"

	"campus_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrPrAdminNotFound = errors.New("pr admin not found")
)

type StudentRepository interface {
	Create(student *models.Student) error
	FindByID(id uint) (*models.Student, error)
	FindByEmail(email string) (*models.Student, error)
	FindByStatus(status models.AccountStatus) ([]models.Student, error)
	FindAll() ([]models.Student, error)
	Save(student *models.Student) error
	Delete(id uint) error
}

type StudentRepositoryImpl struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

func (r *StudentRepositoryImpl) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

func (r *StudentRepositoryImpl) FindByID(id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) FindByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("email = ?", email).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) FindByStatus(status models.AccountStatus) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Where("status = ?", status).Order("id").Find(&students).Error
	return students, err
}

func (r *StudentRepositoryImpl) FindAll() ([]models.Student, error) {
	var students []models.Student
	err := r.db.Order("id").Find(&students).Error
	return students, err
}

func (r *StudentRepositoryImpl) Save(student *models.Student) error {
	return r.db.Save(student).Error
}

func (r *StudentRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Student{}, id).Error
}

// --- PR Admins ---

type PrAdminRepository interface {
	Create(admin *models.PrAdmin) error
	FindByID(id uint) (*models.PrAdmin, error)
	FindByEmail(email string) (*models.PrAdmin, error)
	FindAll() ([]models.PrAdmin, error)
	Delete(id uint) error
}

type PrAdminRepositoryImpl struct {
	db *gorm.DB
}

func NewPrAdminRepository(db *gorm.DB) PrAdminRepository {
	return &PrAdminRepositoryImpl{db: db}
}

func (r *PrAdminRepositoryImpl) Create(admin *models.PrAdmin) error {
	return r.db.Create(admin).Error
}

func (r *PrAdminRepositoryImpl) FindByID(id uint) (*models.PrAdmin, error) {
	var admin models.PrAdmin
	err := r.db.First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *PrAdminRepositoryImpl) FindByEmail(email string) (*models.PrAdmin, error) {
	var admin models.PrAdmin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *PrAdminRepositoryImpl) FindAll() ([]models.PrAdmin, error) {
	var admins []models.PrAdmin
	err := r.db.Order("id").Find(&admins).Error
	return admins, err
}

func (r *PrAdminRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.PrAdmin{}, id).Error
}
