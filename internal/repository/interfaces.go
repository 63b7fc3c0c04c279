package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/carelog/clinic-api/internal/model"
)

// Storage errors translated from the backend by each implementation so
// services never inspect driver errors directly.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	// Delete removes the patient and all of its visits in one
	// transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Patient, error)
	CountVisits(ctx context.Context, patientID uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
}

type VisitRepository interface {
	Create(ctx context.Context, visit *model.Visit) error
	Get(ctx context.Context, id uuid.UUID) (*model.Visit, error)
	Update(ctx context.Context, visit *model.Visit) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Visit, error)
}
