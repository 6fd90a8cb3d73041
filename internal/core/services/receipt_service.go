package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// receiptService issues receipt codes from per-tenant monthly counters.
type receiptService struct {
	BaseService
	counterRepo portsrepo.ReceiptCounterRepository
	location    *time.Location
	now         func() time.Time
}

// ReceiptServiceOption is a functional option for configuring the receipt service
type ReceiptServiceOption func(*receiptService)

// WithReceiptLocation sets the zone used to derive the receipt year and month.
func WithReceiptLocation(loc *time.Location) ReceiptServiceOption {
	return func(s *receiptService) {
		s.location = locationOrUTC(loc)
	}
}

// WithReceiptClock replaces time.Now, mainly for tests.
func WithReceiptClock(now func() time.Time) ReceiptServiceOption {
	return func(s *receiptService) {
		s.now = now
	}
}

// NewReceiptService creates a new receipt service with the provided options
func NewReceiptService(repo portsrepo.ReceiptCounterRepository, options ...ReceiptServiceOption) portssvc.ReceiptSvcFacade {
	svc := &receiptService{
		counterRepo: repo,
		location:    time.UTC,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// GenerateReceipt issues a code in its own transaction.
func (s *receiptService) GenerateReceipt(ctx context.Context, tenantID string, paymentType string) (*domain.IssuedReceipt, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	now := s.now().In(s.location)

	tx, err := s.counterRepo.Begin(ctx)
	if err != nil {
		issued := s.degrade(ctx, tenantID, paymentType, now, err)
		return &issued, nil
	}
	defer func() { _ = s.counterRepo.Rollback(ctx, tx) }()

	issued := s.GenerateReceiptInTx(ctx, tx, tenantID, paymentType, now)
	if issued.Degraded {
		return &issued, nil
	}

	if err := s.counterRepo.Commit(ctx, tx); err != nil {
		issued = s.degrade(ctx, tenantID, paymentType, now, err)
		return &issued, nil
	}

	s.LogInfo(ctx, "Receipt code issued",
		slog.String("receipt_code", issued.Code),
		slog.String("payment_type", paymentType))
	return &issued, nil
}

// GenerateReceiptInTx increments the counter under a savepoint of tx. A failed
// increment rolls back to the savepoint, leaving tx usable, and yields a TMP code.
func (s *receiptService) GenerateReceiptInTx(ctx context.Context, tx pgx.Tx, tenantID string, paymentType string, now time.Time) domain.IssuedReceipt {
	now = now.In(s.location)
	bucket := domain.NewReceiptBucket(tenantID, paymentType, now)

	savepoint, err := tx.Begin(ctx)
	if err != nil {
		return s.degrade(ctx, tenantID, paymentType, now, err)
	}

	counter, err := s.counterRepo.IncrementCounterInTx(ctx, savepoint, bucket)
	if err != nil {
		_ = savepoint.Rollback(ctx)
		return s.degrade(ctx, tenantID, paymentType, now, err)
	}

	if err := savepoint.Commit(ctx); err != nil {
		return s.degrade(ctx, tenantID, paymentType, now, err)
	}

	return domain.IssuedReceipt{Code: bucket.Code(counter), Counter: counter}
}

func (s *receiptService) degrade(ctx context.Context, tenantID, paymentType string, now time.Time, cause error) domain.IssuedReceipt {
	code := domain.TemporaryReceiptCode(now)
	s.LogWarn(ctx, "ReceiptGenerationDegraded",
		slog.String("error", cause.Error()),
		slog.String("tenant_id", tenantID),
		slog.String("payment_type", paymentType),
		slog.String("receipt_code", code))
	return domain.IssuedReceipt{Code: code, Degraded: true}
}

// ListCounters returns the tenant's counters, most recent period first.
func (s *receiptService) ListCounters(ctx context.Context, tenantID string, year *int) ([]domain.ReceiptCounter, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	if year != nil && (*year < 0 || *year > 99) {
		return nil, validationErr("year must be two digits, got %d", *year)
	}

	counters, err := s.counterRepo.ListCounters(ctx, tenantID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipt counters")
		return nil, err
	}
	return counters, nil
}
