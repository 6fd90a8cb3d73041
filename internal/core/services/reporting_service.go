package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/SscSPs/anapath_backend/internal/utils/accounting"
)

const (
	monthlySeriesLimit    = 12
	topPatientsLimit      = 10
	recentPartialPayments = 10
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	location      *time.Location
	now           func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingLocation sets the zone that defines calendar days.
func WithReportingLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		s.location = locationOrUTC(loc)
	}
}

// WithReportingClock replaces time.Now, mainly for tests.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		reportingRepo: repo,
		location:      time.UTC,
		now:           time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetStatistics builds the statistics report over an optional inclusive date range.
func (s *reportingService) GetStatistics(ctx context.Context, tenantID string, params dto.ReportRangeParams) (*domain.PaymentStatistics, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	dates, err := inclusiveRange(params.From, params.To, s.location)
	if err != nil {
		return nil, err
	}

	general, err := s.reportingRepo.GetPaymentStats(ctx, tenantID, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve payment stats")
		return nil, err
	}
	byMode, err := s.reportingRepo.GetTotalsByMode(ctx, tenantID, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve totals by mode")
		return nil, err
	}
	byType, err := s.reportingRepo.GetTotalsByType(ctx, tenantID, dates)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve totals by type")
		return nil, err
	}
	monthly, err := s.reportingRepo.GetMonthlySeries(ctx, tenantID, dates, monthlySeriesLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly series")
		return nil, err
	}
	top, err := s.reportingRepo.GetTopPatients(ctx, tenantID, dates, topPatientsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve top patients")
		return nil, err
	}

	s.LogInfo(ctx, "Statistics report generated",
		slog.String("from", params.From),
		slog.String("to", params.To),
		slog.Int64("payment_count", general.Count))

	return &domain.PaymentStatistics{
		General:     general,
		ByMode:      byMode,
		ByType:      byType,
		Monthly:     monthly,
		TopPatients: top,
	}, nil
}

// GetActiveDebts lists indebted patients, largest debt first.
func (s *reportingService) GetActiveDebts(ctx context.Context, tenantID string) ([]domain.ActiveDebt, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	debts, err := s.reportingRepo.GetActiveDebts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve active debts")
		return nil, err
	}
	return debts, nil
}

// GetDebtStatistics aggregates outstanding debt and the latest partial payments.
func (s *reportingService) GetDebtStatistics(ctx context.Context, tenantID string) (*domain.DebtStatistics, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	stats, err := s.reportingRepo.GetDebtStats(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve debt stats")
		return nil, err
	}
	recent, err := s.reportingRepo.GetRecentPayments(ctx, tenantID, domain.PaymentModePartial, recentPartialPayments)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve recent partial payments")
		return nil, err
	}
	return &domain.DebtStatistics{DebtStats: stats, RecentPartialPayments: recent}, nil
}

// GetDailyReport lists one calendar day of payments; an empty date means today.
func (s *reportingService) GetDailyReport(ctx context.Context, tenantID string, params dto.DailyReportParams) (*domain.DailyReport, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}

	var day time.Time
	if params.Date == "" {
		now := s.now().In(s.location)
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	} else {
		var err error
		if day, err = parseDay(params.Date, s.location); err != nil {
			return nil, err
		}
	}
	next := day.AddDate(0, 0, 1)

	payments, err := s.reportingRepo.GetPaymentsInRange(ctx, tenantID, portsrepo.DateRange{From: &day, To: &next})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve daily payments", slog.String("date", day.Format(dayLayout)))
		return nil, err
	}

	return &domain.DailyReport{
		Date:     day.Format(dayLayout),
		Payments: payments,
		ByMode:   accounting.TotalsByMode(payments),
		Total:    accounting.SumAmounts(payments),
		Count:    len(payments),
	}, nil
}
