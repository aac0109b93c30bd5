package services

import (
	"campus_backend/internal/models"
	"campus_backend/internal/repositories"
	"campus_backend/internal/services/dto"
	"campus_backend/pkg/apperrors"
)

type RegistrationService interface {
	CreateRegistration(req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error)
	GetAllRegistrations() ([]*dto.RegistrationResponse, error)
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
}

func NewRegistrationService(registrationRepo repositories.RegistrationRepository) RegistrationService {
	return &registrationService{registrationRepo: registrationRepo}
}

func (s *registrationService) CreateRegistration(req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error) {
	registration := &models.StudentRegistration{
		Name:      req.Name,
		RollNo:    req.RollNo,
		Email:     req.Email,
		EventID:   req.EventID,
		EventName: req.EventName,
	}

	if err := s.registrationRepo.Create(registration); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildRegistrationResponse(registration), nil
}

func (s *registrationService) GetAllRegistrations() ([]*dto.RegistrationResponse, error) {
	registrations, err := s.registrationRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.RegistrationResponse, 0, len(registrations))
	for i := range registrations {
		responses = append(responses, buildRegistrationResponse(&registrations[i]))
	}
	return responses, nil
}

func buildRegistrationResponse(registration *models.StudentRegistration) *dto.RegistrationResponse {
	return &dto.RegistrationResponse{
		ID:               registration.ID,
		Name:             registration.Name,
		RollNo:           registration.RollNo,
		Email:            registration.Email,
		EventID:          registration.EventID,
		EventName:        registration.EventName,
		RegistrationDate: registration.RegistrationDate,
	}
}
