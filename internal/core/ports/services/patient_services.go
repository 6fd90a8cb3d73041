package services

import (
	"context"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/SscSPs/anapath_backend/internal/dto"
)

// PatientReaderSvc defines read operations for patients and their payment views
type PatientReaderSvc interface {
	// GetPatient retrieves a patient of the tenant.
	GetPatient(ctx context.Context, tenantID string, patientID int64) (*domain.Patient, error)

	// GetPaymentHistory lists the patient's payments, newest first.
	GetPaymentHistory(ctx context.Context, tenantID string, patientID int64) (*domain.PatientHistory, error)

	// GetPaymentSummary aggregates the patient's payments and installment plans.
	GetPaymentSummary(ctx context.Context, tenantID string, patientID int64) (*domain.PatientSummary, error)
}

// PatientWriterSvc defines write operations for patients
type PatientWriterSvc interface {
	// CreatePatient registers a patient with a zero balance.
	CreatePatient(ctx context.Context, tenantID string, req dto.CreatePatientRequest) (*domain.Patient, error)
}

// PatientSvcFacade combines all patient-related service interfaces
type PatientSvcFacade interface {
	PatientReaderSvc
	PatientWriterSvc
}
