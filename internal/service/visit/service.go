package visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/internal/repository"
	"github.com/carelog/clinic-api/pkg/apperror"
)

type VisitService interface {
	ListVisits(ctx context.Context, patientID uuid.UUID) (*model.Patient, []*model.Visit, error)
	GetVisit(ctx context.Context, id uuid.UUID) (*model.Visit, error)
	CreateVisit(ctx context.Context, patientID uuid.UUID, req *model.VisitRequest) (*model.Visit, error)
	UpdateVisit(ctx context.Context, id uuid.UUID, req *model.VisitRequest) (*model.Visit, error)
	DeleteVisit(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     repository.VisitRepository
	patients repository.PatientRepository
}

func NewService(repo repository.VisitRepository, patients repository.PatientRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

// ListVisits returns the owning patient and its visits in insertion
// order. Fails with NotFound when the patient does not exist.
func (s *Service) ListVisits(ctx context.Context, patientID uuid.UUID) (*model.Patient, []*model.Visit, error) {
	patient, err := s.getPatient(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}

	visits, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, nil, apperror.Internal(fmt.Errorf("failed to list visits: %w", err))
	}
	return patient, visits, nil
}

func (s *Service) GetVisit(ctx context.Context, id uuid.UUID) (*model.Visit, error) {
	visit, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("visit", err)
		}
		return nil, apperror.Internal(err)
	}
	return visit, nil
}

// CreateVisit records an encounter under an existing patient. The visit
// date defaults to now and the fees to 0 when omitted.
func (s *Service) CreateVisit(ctx context.Context, patientID uuid.UUID, req *model.VisitRequest) (*model.Visit, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.getPatient(ctx, patientID); err != nil {
		return nil, err
	}

	visit := &model.Visit{
		Base:      model.Base{ID: uuid.New()},
		PatientID: patientID,
		VisitDate: time.Now(),
		Reason:    req.Reason,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
	}
	if req.VisitDate != nil {
		visit.VisitDate = *req.VisitDate
	}
	if req.FeesPaid != nil {
		visit.FeesPaid = *req.FeesPaid
	}

	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to create visit: %w", err))
	}
	return visit, nil
}

func (s *Service) UpdateVisit(ctx context.Context, id uuid.UUID, req *model.VisitRequest) (*model.Visit, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	visit, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("visit", err)
		}
		return nil, apperror.Internal(err)
	}

	if req.VisitDate != nil {
		visit.VisitDate = *req.VisitDate
	}
	visit.Reason = req.Reason
	visit.Diagnosis = req.Diagnosis
	visit.Treatment = req.Treatment
	if req.FeesPaid != nil {
		visit.FeesPaid = *req.FeesPaid
	} else {
		visit.FeesPaid = 0
	}

	if err := s.repo.Update(ctx, visit); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("visit", err)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to update visit: %w", err))
	}
	return visit, nil
}

// DeleteVisit removes a single visit. The owning patient is untouched.
func (s *Service) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("visit", err)
		}
		return apperror.Internal(fmt.Errorf("failed to delete visit: %w", err))
	}
	return nil
}

func (s *Service) getPatient(ctx context.Context, patientID uuid.UUID) (*model.Patient, error) {
	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("patient", err)
		}
		return nil, apperror.Internal(err)
	}
	return patient, nil
}

func validateRequest(req *model.VisitRequest) error {
	var fields []apperror.FieldError

	if req.FeesPaid != nil && *req.FeesPaid < 0 {
		fields = append(fields, apperror.FieldError{Field: "fees_paid", Message: "fees paid must not be negative"})
	}

	if len(fields) > 0 {
		return apperror.Validation(fields...)
	}
	return nil
}
