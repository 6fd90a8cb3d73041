package repositories

import (
	"context"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment of the tenant, joined with its patient.
	FindPaymentByID(ctx context.Context, tenantID string, paymentID int64) (*domain.Payment, error)

	// ListPayments returns one page of payments matching filter, newest first, and the total match count.
	ListPayments(ctx context.Context, tenantID string, filter domain.PaymentFilter, limit, offset int) ([]domain.Payment, int64, error)

	// ListPaymentsByPatient returns every payment of a patient, newest first.
	ListPaymentsByPatient(ctx context.Context, tenantID string, patientID int64) ([]domain.Payment, error)
}

// PaymentTransactionSupport defines operations that run inside a creation or deletion transaction
type PaymentTransactionSupport interface {
	// InsertPaymentInTx inserts a payment and returns it with id and timestamp.
	InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (*domain.Payment, error)

	// FindPaymentForUpdate selects the payment and locks its row until tx ends.
	FindPaymentForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, paymentID int64) (*domain.Payment, error)

	// DeletePaymentInTx removes a payment within tx.
	DeletePaymentInTx(ctx context.Context, tx pgx.Tx, tenantID string, paymentID int64) error

	// SumPaymentsForPatientInTx sums the paid amounts of the patient's remaining payments.
	SumPaymentsForPatientInTx(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64) (decimal.Decimal, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentTransactionSupport
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
