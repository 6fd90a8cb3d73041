package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
)

// DateRange bounds a report; nil ends are open. To is exclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ReportingRepository defines read-only aggregate queries over payments and balances
type ReportingRepository interface {
	// GetPaymentStats computes count/sum/avg/min/max/distinct patients over the range
	GetPaymentStats(ctx context.Context, tenantID string, r DateRange) (domain.PaymentStats, error)

	// GetTotalsByMode groups the range by payment mode, largest total first
	GetTotalsByMode(ctx context.Context, tenantID string, r DateRange) ([]domain.GroupTotal, error)

	// GetTotalsByType groups the range by payment type, largest total first
	GetTotalsByType(ctx context.Context, tenantID string, r DateRange) ([]domain.GroupTotal, error)

	// GetMonthlySeries returns up to limit months, most recent first
	GetMonthlySeries(ctx context.Context, tenantID string, r DateRange, limit int) ([]domain.MonthlyTotal, error)

	// GetTopPatients ranks patients by total paid
	GetTopPatients(ctx context.Context, tenantID string, r DateRange, limit int) ([]domain.PatientTotal, error)

	// GetActiveDebts lists patients with a negative balance, largest debt first
	GetActiveDebts(ctx context.Context, tenantID string) ([]domain.ActiveDebt, error)

	// GetDebtStats aggregates outstanding debt
	GetDebtStats(ctx context.Context, tenantID string) (domain.DebtStats, error)

	// GetRecentPayments returns the latest payments of a mode, newest first
	GetRecentPayments(ctx context.Context, tenantID string, mode domain.PaymentMode, limit int) ([]domain.Payment, error)

	// GetPaymentsInRange returns every payment in the range, newest first
	GetPaymentsInRange(ctx context.Context, tenantID string, r DateRange) ([]domain.Payment, error)
}
