package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/internal/repository"
	"github.com/carelog/clinic-api/pkg/apperror"
)

const (
	maxNameLen  = 255
	maxPhoneLen = 20
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	CreatePatient(ctx context.Context, req *model.PatientRequest) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.PatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	CountPatients(ctx context.Context) (int, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

// ListPatients returns all patients ordered by name.
func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list patients: %w", err))
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("patient", err)
		}
		return nil, apperror.Internal(err)
	}
	return patient, nil
}

func (s *Service) CreatePatient(ctx context.Context, req *model.PatientRequest) (*model.Patient, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	patient := &model.Patient{
		Base:    model.Base{ID: uuid.New()},
		Name:    strings.TrimSpace(req.Name),
		Age:     req.Age,
		Gender:  req.Gender,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create patient: %w", err))
	}
	return patient, nil
}

// UpdatePatient replaces every form-bound field on the patient.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.PatientRequest) (*model.Patient, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("patient", err)
		}
		return nil, apperror.Internal(err)
	}

	patient.Name = strings.TrimSpace(req.Name)
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Phone = req.Phone
	patient.Address = req.Address

	if err := s.repo.Update(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("patient", err)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to update patient: %w", err))
	}
	return patient, nil
}

// DeletePatient removes the patient and every visit it owns. The
// repository performs both deletes in a single transaction.
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("patient", err)
		}
		return apperror.Internal(fmt.Errorf("failed to delete patient: %w", err))
	}
	return nil
}

func (s *Service) CountPatients(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

// validateRequest enforces the patient invariants independently of
// transport-level binding, so every caller gets the same rules.
func validateRequest(req *model.PatientRequest) error {
	var fields []apperror.FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > maxNameLen {
		fields = append(fields, apperror.FieldError{Field: "name", Message: fmt.Sprintf("name must not exceed %d characters", maxNameLen)})
	}

	if req.Age != nil && *req.Age < 0 {
		fields = append(fields, apperror.FieldError{Field: "age", Message: "age must not be negative"})
	}

	if req.Gender != nil && !model.ValidGender(*req.Gender) {
		fields = append(fields, apperror.FieldError{Field: "gender", Message: "gender must be one of Male, Female, Other"})
	}

	if req.Phone != nil && len(*req.Phone) > maxPhoneLen {
		fields = append(fields, apperror.FieldError{Field: "phone", Message: fmt.Sprintf("phone must not exceed %d characters", maxPhoneLen)})
	}

	if len(fields) > 0 {
		return apperror.Validation(fields...)
	}
	return nil
}
