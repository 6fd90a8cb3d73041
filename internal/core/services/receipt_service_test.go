package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/anapath_backend/internal/apperrors"
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/SscSPs/anapath_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(now time.Time) services.ReceiptServiceOption {
	return services.WithReceiptClock(func() time.Time { return now })
}

func TestGenerateReceipt_IssuesNextCode(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReceiptCounterRepository)
	tx := &fakeTx{}
	now := time.Date(2026, time.March, 9, 8, 30, 0, 0, time.UTC)
	svc := services.NewReceiptService(repo, fixedClock(now))

	bucket := domain.ReceiptBucket{TenantID: tenant, ExamType: "cytologie", Year: 26, Month: 3}
	repo.On("Begin", ctx).Return(tx, nil).Once()
	repo.On("IncrementCounterInTx", ctx, mock.Anything, bucket).Return(int64(5), nil).Once()
	repo.On("Commit", ctx, tx).Return(nil).Once()
	repo.On("Rollback", ctx, tx).Return(nil).Once()

	issued, err := svc.GenerateReceipt(ctx, tenant, "Cytologie")

	require.NoError(t, err)
	assert.Equal(t, "005C26C", issued.Code)
	assert.Equal(t, int64(5), issued.Counter)
	assert.False(t, issued.Degraded)
	repo.AssertExpectations(t)
}

func TestGenerateReceipt_UsesConfiguredLocation(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReceiptCounterRepository)
	tx := &fakeTx{}
	algiers := time.FixedZone("CET", 3600)
	// 23:30 UTC on Dec 31 is already January in Algiers
	now := time.Date(2025, time.December, 31, 23, 30, 0, 0, time.UTC)
	svc := services.NewReceiptService(repo,
		services.WithReceiptClock(func() time.Time { return now }),
		services.WithReceiptLocation(algiers))

	bucket := domain.ReceiptBucket{TenantID: tenant, ExamType: "histologie", Year: 26, Month: 1}
	repo.On("Begin", ctx).Return(tx, nil).Once()
	repo.On("IncrementCounterInTx", ctx, mock.Anything, bucket).Return(int64(1), nil).Once()
	repo.On("Commit", ctx, tx).Return(nil).Once()
	repo.On("Rollback", ctx, tx).Return(nil).Once()

	issued, err := svc.GenerateReceipt(ctx, tenant, "histologie")

	require.NoError(t, err)
	assert.Equal(t, "001H26A", issued.Code)
	repo.AssertExpectations(t)
}

func TestGenerateReceipt_DegradesInsteadOfFailing(t *testing.T) {
	now := time.Date(2026, time.May, 2, 14, 5, 9, 0, time.UTC)
	bucket := domain.ReceiptBucket{TenantID: tenant, ExamType: "fcv", Year: 26, Month: 5}

	tests := []struct {
		name  string
		setup func(ctx context.Context, repo *MockReceiptCounterRepository, tx *fakeTx)
	}{
		{
			name: "begin fails",
			setup: func(ctx context.Context, repo *MockReceiptCounterRepository, tx *fakeTx) {
				repo.On("Begin", ctx).Return(nil, errDatabaseDown).Once()
			},
		},
		{
			name: "increment fails",
			setup: func(ctx context.Context, repo *MockReceiptCounterRepository, tx *fakeTx) {
				repo.On("Begin", ctx).Return(tx, nil).Once()
				repo.On("IncrementCounterInTx", ctx, mock.Anything, bucket).Return(int64(0), errDatabaseDown).Once()
				repo.On("Rollback", ctx, tx).Return(nil).Once()
			},
		},
		{
			name: "commit fails",
			setup: func(ctx context.Context, repo *MockReceiptCounterRepository, tx *fakeTx) {
				repo.On("Begin", ctx).Return(tx, nil).Once()
				repo.On("IncrementCounterInTx", ctx, mock.Anything, bucket).Return(int64(8), nil).Once()
				repo.On("Commit", ctx, tx).Return(apperrors.NewAppError(500, "failed to commit transaction", errDatabaseDown)).Once()
				repo.On("Rollback", ctx, tx).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockReceiptCounterRepository)
			tt.setup(ctx, repo, &fakeTx{})
			svc := services.NewReceiptService(repo, services.WithReceiptClock(func() time.Time { return now }))

			issued, err := svc.GenerateReceipt(ctx, tenant, "FCV")

			require.NoError(t, err)
			assert.True(t, issued.Degraded)
			assert.Equal(t, "TMP20260502140509", issued.Code)
			repo.AssertExpectations(t)
		})
	}
}

func TestGenerateReceiptInTx_SavepointIsolatesFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReceiptCounterRepository)
	svc := services.NewReceiptService(repo)
	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	outer := &fakeTx{}
	repo.On("IncrementCounterInTx", ctx, mock.Anything, mock.Anything).Return(int64(0), errDatabaseDown).Once()

	issued := svc.GenerateReceiptInTx(ctx, outer, tenant, "biopsie", now)

	assert.True(t, issued.Degraded)
	require.Len(t, outer.savepoints, 1)
	assert.True(t, outer.savepoints[0].rolledBack)
	assert.False(t, outer.rolledBack)
	assert.False(t, outer.committed)
}

func TestGenerateReceiptInTx_SavepointUnavailable(t *testing.T) {
	repo := new(MockReceiptCounterRepository)
	svc := services.NewReceiptService(repo)

	issued := svc.GenerateReceiptInTx(context.Background(), &fakeTx{beginErr: errDatabaseDown}, tenant, "biopsie", fixedNow)

	assert.True(t, issued.Degraded)
	assert.Equal(t, "TMP20260115100000", issued.Code)
	repo.AssertNotCalled(t, "IncrementCounterInTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateReceipt_MissingTenant(t *testing.T) {
	repo := new(MockReceiptCounterRepository)
	svc := services.NewReceiptService(repo)

	issued, err := svc.GenerateReceipt(context.Background(), "", "fcv")

	assert.Nil(t, issued)
	assert.ErrorIs(t, err, apperrors.ErrMissingTenant)
	repo.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestListCounters(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReceiptCounterRepository)
	svc := services.NewReceiptService(repo)
	year := 26

	counters := []domain.ReceiptCounter{{ExamType: "histologie", Year: 26, Month: 2, Value: 12}}
	repo.On("ListCounters", ctx, tenant, &year).Return(counters, nil).Once()

	got, err := svc.ListCounters(ctx, tenant, &year)
	require.NoError(t, err)
	assert.Equal(t, counters, got)

	bad := 2026
	_, err = svc.ListCounters(ctx, tenant, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}
