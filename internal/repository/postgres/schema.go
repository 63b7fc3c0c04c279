package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied at startup. ON DELETE CASCADE backs up the
// application-level cascade in patientRepository.Delete; the explicit
// transaction remains the authoritative path.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(200) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		age INTEGER,
		gender VARCHAR(20),
		phone VARCHAR(20),
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS visits (
		id UUID PRIMARY KEY,
		patient_id UUID NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		visit_date TIMESTAMPTZ NOT NULL,
		reason TEXT,
		diagnosis TEXT,
		treatment TEXT,
		fees_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_patient_id ON visits (patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_patients_name ON patients (name)`,
}

// Migrate applies the schema statements in order.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
