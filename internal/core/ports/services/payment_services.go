package services

import (
	"context"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/SscSPs/anapath_backend/internal/dto"
)

// PaymentReaderSvc defines read operations for payment records
type PaymentReaderSvc interface {
	// GetPayment retrieves a payment of the tenant.
	GetPayment(ctx context.Context, tenantID string, paymentID int64) (*domain.Payment, error)

	// ListPayments returns one page of the tenant's payments.
	ListPayments(ctx context.Context, tenantID string, params dto.ListPaymentsParams) (*domain.PaymentPage, error)
}

// PaymentWriterSvc defines the ledger-mutating operations
type PaymentWriterSvc interface {
	// RecordPayment records a payment in any mode and updates the patient balance atomically.
	RecordPayment(ctx context.Context, tenantID string, req dto.CreatePaymentRequest) (*domain.PaymentOutcome, error)

	// RecordPartialPayment records a payment against existing debt.
	RecordPartialPayment(ctx context.Context, tenantID string, req dto.PartialPaymentRequest) (*domain.PaymentOutcome, error)

	// DeletePayment removes a payment and rebalances its patient in the same transaction.
	DeletePayment(ctx context.Context, tenantID string, paymentID int64) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
