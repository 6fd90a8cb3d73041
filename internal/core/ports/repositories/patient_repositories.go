package repositories

import (
	"context"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PatientReader defines read operations for patient data
type PatientReader interface {
	// FindPatientByID retrieves a patient of the tenant.
	FindPatientByID(ctx context.Context, tenantID string, patientID int64) (*domain.Patient, error)
}

// PatientWriter defines write operations for patient data
type PatientWriter interface {
	// SavePatient inserts a patient and returns it with its generated id.
	SavePatient(ctx context.Context, patient domain.Patient) (*domain.Patient, error)
}

// PatientTransactionSupport defines the balance operations used inside payment transactions
type PatientTransactionSupport interface {
	// FindPatientForUpdate selects the patient and locks its row until tx ends.
	FindPatientForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64) (*domain.Patient, error)

	// UpdatePatientBalanceInTx stores a new balance within tx.
	UpdatePatientBalanceInTx(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64, balance decimal.Decimal) error
}

// PatientRepositoryFacade combines all patient-related repository interfaces
type PatientRepositoryFacade interface {
	PatientReader
	PatientWriter
	PatientTransactionSupport
}
