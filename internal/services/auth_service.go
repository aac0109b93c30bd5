package services

import (
	"strings"

	"campus_backend/internal/auth"
	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
	"campus_backend/internal/services/dto"
	"campus_backend/pkg/apperrors"
)

type AuthService interface {
	RegisterStudent(req *dto.AuthRequest) error
	LoginStudent(req *dto.AuthRequest) (*dto.LoginResponse, error)
	LoginPrAdmin(req *dto.AuthRequest) (*dto.LoginResponse, error)
}

type authService struct {
	studentRepo repositories.StudentRepository
	prAdminRepo repositories.PrAdminRepository
}

func NewAuthService(
	studentRepo repositories.StudentRepository,
	prAdminRepo repositories.PrAdminRepository,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		prAdminRepo: prAdminRepo,
	}
}

// RegisterStudent creates a new student account in PENDING state. The email
// must be unique across both students and PR admins.
func (s *authService) RegisterStudent(req *dto.AuthRequest) error {
	if taken, err := s.emailInUse(req.Email); err != nil {
		return apperrors.InternalError(err)
	} else if taken {
		return apperrors.ErrEmailInUse
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	student := &models.Student{
		Name:         strings.SplitN(req.Email, "@", 2)[0],
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
		Status:       models.AccountStatusPending,
	}

	if err := s.studentRepo.Create(student); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) LoginStudent(req *dto.AuthRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, student.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Password is correct, but pending/rejected accounts cannot log in.
	if student.Status != models.AccountStatusApproved {
		return nil, apperrors.ErrAccountNotApproved
	}

	token, err := auth.GenerateToken(student.Email, student.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Name:  student.Name,
		Email: student.Email,
		Role:  student.Role,
		Token: token,
	}, nil
}

func (s *authService) LoginPrAdmin(req *dto.AuthRequest) (*dto.LoginResponse, error) {
	admin, err := s.prAdminRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(admin.Email, admin.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
		Token: token,
	}, nil
}

func (s *authService) emailInUse(email string) (bool, error) {
	if _, err := s.studentRepo.FindByEmail(email); err == nil {
		return true, nil
	} else if !apperrors.Is(err, repositories.ErrStudentNotFound) {
		return false, err
	}

	if _, err := s.prAdminRepo.FindByEmail(email); err == nil {
		return true, nil
	} else if !apperrors.Is(err, repositories.ErrPrAdminNotFound) {
		return false, err
	}

	return false, nil
}
