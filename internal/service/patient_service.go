package service

import (
	"context"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/repository"
	"github.com/google/uuid"
)

type PatientService interface {
	Create(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
}

type patientService struct {
	repo repository.PatientRepository
}

func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) Create(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error) {
	patient := &domain.Patient{
		ID:     uuid.New(),
		Age:    req.Age,
		Gender: req.Gender,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func (s *patientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}
