package services

import (
	"context"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/SscSPs/anapath_backend/internal/dto"
)

// ReportingSvc defines read-only reports over payments and balances
type ReportingSvc interface {
	// GetStatistics returns general stats, breakdowns, the monthly series and top patients.
	GetStatistics(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.PaymentStatistics, error)

	// GetActiveDebts lists indebted patients, largest debt first.
	GetActiveDebts(ctx context.Context, tenantID string) ([]domain.ActiveDebt, error)

	// GetDebtStatistics aggregates outstanding debt and the latest partial payments.
	GetDebtStatistics(ctx context.Context, tenantID string) (*domain.DebtStatistics, error)

	// GetDailyReport lists one day of payments with per-mode subtotals.
	GetDailyReport(ctx context.Context, tenantID string, params dto.DailyReportParams) (*domain.DailyReport, error)
}
