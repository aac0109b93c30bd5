package services

import (
	"fmt"

	"campus_backend/internal/auth"
	"campus_backend/internal/email"
	"campus_backend/internal/logger"
	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
	"campus_backend/internal/services/dto"
	"campus_backend/pkg/apperrors"
)

type AdminService interface {
	PendingStudents() ([]*dto.StudentResponse, error)
	AllStudents() ([]*dto.StudentResponse, error)
	ApproveStudent(id uint) error
	RejectStudent(id uint) error

	CreatePrAdmin(req *dto.CreatePrAdminRequest) (*dto.PrAdminResponse, error)
	AllPrAdmins() ([]*dto.PrAdminResponse, error)
	DeletePrAdmin(id uint) error
}

type adminService struct {
	studentRepo      repositories.StudentRepository
	prAdminRepo      repositories.PrAdminRepository
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewAdminService(
	studentRepo repositories.StudentRepository,
	prAdminRepo repositories.PrAdminRepository,
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) AdminService {
	return &adminService{
		studentRepo:      studentRepo,
		prAdminRepo:      prAdminRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

// ---------------- Student management ----------------

func (s *adminService) PendingStudents() ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.FindByStatus(models.AccountStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildStudentResponses(students), nil
}

func (s *adminService) AllStudents() ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildStudentResponses(students), nil
}

// ApproveStudent flips the account to APPROVED. The in-app notification and
// the email are best-effort side effects; their failure does not undo the
// approval.
func (s *adminService) ApproveStudent(id uint) error {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return apperrors.InternalError(err)
	}

	student.Status = models.AccountStatusApproved
	if err := s.studentRepo.Save(student); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.notificationRepo.Create(&models.Notification{
		UserEmail: student.Email,
		Title:     "Account Approved",
		Message:   "Your account has been approved. You can now log in.",
		Type:      models.NotificationTypeSuccess,
	}); err != nil {
		logger.Warn("Failed to create approval notification", "student_id", id, "error", err)
	}

	if err := s.emailProvider.Send(
		student.Email,
		"Your campus account is approved",
		fmt.Sprintf("Hello %s,\n\nYour account has been approved. You can now log in.\n", student.Name),
	); err != nil {
		logger.Warn("Failed to send approval email", "student_id", id, "error", err)
	}

	return nil
}

// RejectStudent removes the account entirely.
func (s *adminService) RejectStudent(id uint) error {
	if _, err := s.studentRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.studentRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- PR admin management ----------------

func (s *adminService) CreatePrAdmin(req *dto.CreatePrAdminRequest) (*dto.PrAdminResponse, error) {
	if taken, err := s.emailInUse(req.Email); err != nil {
		return nil, apperrors.InternalError(err)
	} else if taken {
		return nil, apperrors.ErrEmailInUse
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	admin := &models.PrAdmin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RolePrAdmin,
	}

	if err := s.prAdminRepo.Create(admin); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildPrAdminResponse(admin), nil
}

func (s *adminService) AllPrAdmins() ([]*dto.PrAdminResponse, error) {
	admins, err := s.prAdminRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PrAdminResponse, 0, len(admins))
	for i := range admins {
		responses = append(responses, buildPrAdminResponse(&admins[i]))
	}
	return responses, nil
}

func (s *adminService) DeletePrAdmin(id uint) error {
	if _, err := s.prAdminRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrPrAdminNotFound) {
			return apperrors.ErrPrAdminNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.prAdminRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *adminService) emailInUse(email string) (bool, error) {
	if _, err := s.prAdminRepo.FindByEmail(email); err == nil {
		return true, nil
	} else if !apperrors.Is(err, repositories.ErrPrAdminNotFound) {
		return false, err
	}

	if _, err := s.studentRepo.FindByEmail(email); err == nil {
		return true, nil
	} else if !apperrors.Is(err, repositories.ErrStudentNotFound) {
		return false, err
	}

	return false, nil
}

// ---------------- Helpers ----------------

func buildStudentResponses(students []models.Student) []*dto.StudentResponse {
	responses := make([]*dto.StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, &dto.StudentResponse{
			ID:     students[i].ID,
			Name:   students[i].Name,
			Email:  students[i].Email,
			Role:   students[i].Role,
			Status: string(students[i].Status),
		})
	}
	return responses
}

func buildPrAdminResponse(admin *models.PrAdmin) *dto.PrAdminResponse {
	return &dto.PrAdminResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	}
}
