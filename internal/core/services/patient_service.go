package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/anapath_backend/internal/apperrors"
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/SscSPs/anapath_backend/internal/utils/accounting"
)

type patientService struct {
	BaseService
	patientRepo portsrepo.PatientRepositoryFacade
	paymentRepo portsrepo.PaymentReader
}

// NewPatientService creates a new patient service.
func NewPatientService(patientRepo portsrepo.PatientRepositoryFacade, paymentRepo portsrepo.PaymentReader) portssvc.PatientSvcFacade {
	return &patientService{
		patientRepo: patientRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.PatientSvcFacade = (*patientService)(nil)

func (s *patientService) CreatePatient(ctx context.Context, tenantID string, req dto.CreatePatientRequest) (*domain.Patient, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}

	patient := req.ToDomain(tenantID)
	if patient.Name == "" {
		return nil, validationErr("name is required")
	}
	if patient.Age != nil && *patient.Age < 0 {
		return nil, validationErr("age must not be negative")
	}

	saved, err := s.patientRepo.SavePatient(ctx, patient)
	if err != nil {
		s.LogError(ctx, err, "Failed to create patient")
		return nil, err
	}

	s.LogInfo(ctx, "Patient created", slog.Int64("patient_id", saved.ID))
	return saved, nil
}

func (s *patientService) GetPatient(ctx context.Context, tenantID string, patientID int64) (*domain.Patient, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	patient, err := s.patientRepo.FindPatientByID(ctx, tenantID, patientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get patient", slog.Int64("patient_id", patientID))
		}
		return nil, err
	}
	return patient, nil
}

// loadWithPayments fetches the patient first so that an unknown id is
// reported as not found rather than as an empty history.
func (s *patientService) loadWithPayments(ctx context.Context, tenantID string, patientID int64) (*domain.Patient, []domain.Payment, error) {
	patient, err := s.GetPatient(ctx, tenantID, patientID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByPatient(ctx, tenantID, patientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list patient payments", slog.Int64("patient_id", patientID))
		return nil, nil, err
	}
	return patient, payments, nil
}

func (s *patientService) GetPaymentHistory(ctx context.Context, tenantID string, patientID int64) (*domain.PatientHistory, error) {
	patient, payments, err := s.loadWithPayments(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}
	return &domain.PatientHistory{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Payments:    payments,
		Count:       len(payments),
	}, nil
}

func (s *patientService) GetPaymentSummary(ctx context.Context, tenantID string, patientID int64) (*domain.PatientSummary, error) {
	patient, payments, err := s.loadWithPayments(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}

	summary := &domain.PatientSummary{
		Patient:        *patient,
		Payments:       payments,
		TotalPaid:      accounting.SumAmounts(payments),
		CurrentBalance: patient.Balance,
		Installments:   []domain.InstallmentDetail{},
	}
	if len(payments) > 0 {
		last := payments[0]
		summary.LastPayment = &last
	}

	for _, p := range payments {
		switch p.Mode {
		case domain.PaymentModeInstallment:
			summary.InstallmentCount++
			if p.TotalAmount != nil {
				summary.Installments = append(summary.Installments, domain.InstallmentDetail{
					PaymentID:   p.ID,
					Paid:        p.Amount,
					Total:       *p.TotalAmount,
					Remaining:   p.RemainingDue(),
					ReceiptCode: p.ReceiptCode,
					PaidAt:      p.PaidAt,
				})
			}
		case domain.PaymentModePartial:
			summary.PartialCount++
		}
	}

	return summary, nil
}
