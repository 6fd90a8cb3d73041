package repositories

import (
	"context"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ReceiptCounterRepository persists receipt counters.
type ReceiptCounterRepository interface {
	TransactionManager

	// IncrementCounterInTx atomically creates the bucket at 1 or adds 1, returning the new value.
	IncrementCounterInTx(ctx context.Context, tx pgx.Tx, bucket domain.ReceiptBucket) (int64, error)

	// ListCounters returns the tenant's counters, optionally limited to one two-digit year.
	ListCounters(ctx context.Context, tenantID string, year *int) ([]domain.ReceiptCounter, error)
}
