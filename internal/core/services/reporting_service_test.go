package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/anapath_backend/internal/apperrors"
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/SscSPs/anapath_backend/internal/core/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetDailyReport_DefaultsToToday(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo,
		services.WithReportingClock(func() time.Time { return time.Date(2026, 4, 10, 16, 45, 0, 0, time.UTC) }))

	from := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)
	repo.On("GetPaymentsInRange", ctx, tenant, portsrepo.DateRange{From: &from, To: &to}).Return([]domain.Payment{
		{ID: 3, Mode: domain.PaymentModeInstallment, Amount: decimal.NewFromInt(1000)},
		{ID: 2, Mode: domain.PaymentModeCash, Amount: decimal.NewFromInt(200)},
		{ID: 1, Mode: domain.PaymentModeCash, Amount: decimal.NewFromInt(300)},
	}, nil).Once()

	report, err := svc.GetDailyReport(ctx, tenant, dto.DailyReportParams{})

	require.NoError(t, err)
	assert.Equal(t, "2026-04-10", report.Date)
	assert.Equal(t, 3, report.Count)
	assert.True(t, report.Total.Equal(decimal.NewFromInt(1500)))
	require.Len(t, report.ByMode, 2)
	assert.Equal(t, "cash", report.ByMode[0].Key)
	assert.True(t, report.ByMode[0].Total.Equal(decimal.NewFromInt(500)))
	repo.AssertExpectations(t)
}

func TestGetDailyReport_InvalidDate(t *testing.T) {
	svc := services.NewReportingService(new(MockReportingRepository))
	_, err := svc.GetDailyReport(context.Background(), tenant, dto.DailyReportParams{Date: "2026-13-01"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetStatistics(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	dr := portsrepo.DateRange{From: &from, To: &to}

	repo.On("GetPaymentStats", ctx, tenant, dr).Return(domain.PaymentStats{Count: 4, Total: decimal.NewFromInt(900)}, nil).Once()
	repo.On("GetTotalsByMode", ctx, tenant, dr).Return([]domain.GroupTotal{{Key: "cash", Count: 4}}, nil).Once()
	repo.On("GetTotalsByType", ctx, tenant, dr).Return([]domain.GroupTotal{{Key: "fcv", Count: 4}}, nil).Once()
	repo.On("GetMonthlySeries", ctx, tenant, dr, 12).Return([]domain.MonthlyTotal{{Month: "2026-03", Count: 4}}, nil).Once()
	repo.On("GetTopPatients", ctx, tenant, dr, 10).Return([]domain.PatientTotal{{PatientID: 1, Count: 4}}, nil).Once()

	stats, err := svc.GetStatistics(ctx, tenant, dto.ReportRangeParams{From: "2026-01-01", To: "2026-12-31"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.General.Count)
	assert.Len(t, stats.Monthly, 1)
	assert.Len(t, stats.TopPatients, 1)
	repo.AssertExpectations(t)
}

func TestGetStatistics_StopsOnRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)

	repo.On("GetPaymentStats", ctx, tenant, portsrepo.DateRange{}).Return(domain.PaymentStats{}, errDatabaseDown).Once()

	_, err := svc.GetStatistics(ctx, tenant, dto.ReportRangeParams{})

	assert.ErrorIs(t, err, errDatabaseDown)
	repo.AssertNotCalled(t, "GetTotalsByMode", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDebtStatistics(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)

	repo.On("GetDebtStats", ctx, tenant).Return(domain.DebtStats{IndebtedPatients: 2, TotalDebt: decimal.NewFromInt(700)}, nil).Once()
	repo.On("GetRecentPayments", ctx, tenant, domain.PaymentModePartial, 10).Return([]domain.Payment{{ID: 8}}, nil).Once()

	stats, err := svc.GetDebtStatistics(ctx, tenant)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.IndebtedPatients)
	assert.Len(t, stats.RecentPartialPayments, 1)
	repo.AssertExpectations(t)
}

func TestReports_MissingTenant(t *testing.T) {
	svc := services.NewReportingService(new(MockReportingRepository))

	_, err := svc.GetActiveDebts(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrMissingTenant)

	_, err = svc.GetDebtStatistics(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrMissingTenant)
}
