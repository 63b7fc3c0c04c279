package model

import (
	"time"

	"github.com/google/uuid"
)

// Visit represents one clinical encounter belonging to exactly one
// patient. A visit cannot outlive its patient.
type Visit struct {
	Base
	PatientID uuid.UUID `json:"patient_id" db:"patient_id"`
	VisitDate time.Time `json:"visit_date" db:"visit_date"`
	Reason    *string   `json:"reason" db:"reason"`
	Diagnosis *string   `json:"diagnosis" db:"diagnosis"`
	Treatment *string   `json:"treatment" db:"treatment"`
	FeesPaid  float64   `json:"fees_paid" db:"fees_paid"`
}

// VisitRequest carries the form-bound visit fields. VisitDate defaults
// to the current time and FeesPaid to 0 when omitted.
type VisitRequest struct {
	VisitDate *time.Time `json:"visit_date" form:"visit_date"`
	Reason    *string    `json:"reason" form:"reason"`
	Diagnosis *string    `json:"diagnosis" form:"diagnosis"`
	Treatment *string    `json:"treatment" form:"treatment"`
	FeesPaid  *float64   `json:"fees_paid" form:"fees_paid" binding:"omitempty,gte=0"`
}
