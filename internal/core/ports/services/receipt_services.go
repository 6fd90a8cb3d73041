package services

import (
	"context"
	"time"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ReceiptIssuerSvc issues receipt codes. Issuing never fails: persistence
// problems yield a temporary code flagged as degraded.
type ReceiptIssuerSvc interface {
	// GenerateReceipt issues a code in its own transaction.
	GenerateReceipt(ctx context.Context, tenantID string, paymentType string) (*domain.IssuedReceipt, error)

	// GenerateReceiptInTx issues a code inside the caller's transaction.
	GenerateReceiptInTx(ctx context.Context, tx pgx.Tx, tenantID string, paymentType string, now time.Time) domain.IssuedReceipt
}

// ReceiptCounterReaderSvc exposes counters for reporting
type ReceiptCounterReaderSvc interface {
	ListCounters(ctx context.Context, tenantID string, year *int) ([]domain.ReceiptCounter, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptIssuerSvc
	ReceiptCounterReaderSvc
}
