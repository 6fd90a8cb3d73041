package services_test

import (
	"context"
	"errors"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a pgx transaction. Only the savepoint calls made by
// services are implemented; anything else panics through the nil embedded Tx.
type fakeTx struct {
	pgx.Tx
	beginErr   error
	commitErr  error
	committed  bool
	rolledBack bool
	savepoints []*fakeTx
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) {
	if t.beginErr != nil {
		return nil, t.beginErr
	}
	sp := &fakeTx{}
	t.savepoints = append(t.savepoints, sp)
	return sp, nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

var errDatabaseDown = errors.New("connection refused")

func decEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// MockTransactionManager is shared by every repository mock.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockPatientRepository is a mock type for the PatientRepositoryFacade interface
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, tenantID string, patientID int64) (*domain.Patient, error) {
	args := m.Called(ctx, tenantID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *MockPatientRepository) SavePatient(ctx context.Context, patient domain.Patient) (*domain.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindPatientForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64) (*domain.Patient, error) {
	args := m.Called(ctx, tx, tenantID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatientBalanceInTx(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64, balance decimal.Decimal) error {
	args := m.Called(ctx, tx, tenantID, patientID, balance)
	return args.Error(0)
}

var _ portsrepo.PatientRepositoryFacade = (*MockPatientRepository)(nil)

// MockPaymentRepository is a mock type for the PaymentRepositoryWithTx interface
type MockPaymentRepository struct {
	MockTransactionManager
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, tenantID string, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, tenantID string, filter domain.PaymentFilter, limit, offset int) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, tenantID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) ListPaymentsByPatient(ctx context.Context, tenantID string, patientID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, tx, payment)
	if rf, ok := args.Get(0).(func(context.Context, pgx.Tx, domain.Payment) *domain.Payment); ok {
		return rf(ctx, tx, payment), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, tx, tenantID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePaymentInTx(ctx context.Context, tx pgx.Tx, tenantID string, paymentID int64) error {
	args := m.Called(ctx, tx, tenantID, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) SumPaymentsForPatientInTx(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, tenantID, patientID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portsrepo.PaymentRepositoryWithTx = (*MockPaymentRepository)(nil)

// MockReceiptCounterRepository is a mock type for the ReceiptCounterRepository interface
type MockReceiptCounterRepository struct {
	MockTransactionManager
}

func (m *MockReceiptCounterRepository) IncrementCounterInTx(ctx context.Context, tx pgx.Tx, bucket domain.ReceiptBucket) (int64, error) {
	args := m.Called(ctx, tx, bucket)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReceiptCounterRepository) ListCounters(ctx context.Context, tenantID string, year *int) ([]domain.ReceiptCounter, error) {
	args := m.Called(ctx, tenantID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceiptCounter), args.Error(1)
}

var _ portsrepo.ReceiptCounterRepository = (*MockReceiptCounterRepository)(nil)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetPaymentStats(ctx context.Context, tenantID string, r portsrepo.DateRange) (domain.PaymentStats, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Get(0).(domain.PaymentStats), args.Error(1)
}

func (m *MockReportingRepository) GetTotalsByMode(ctx context.Context, tenantID string, r portsrepo.DateRange) ([]domain.GroupTotal, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Get(0).([]domain.GroupTotal), args.Error(1)
}

func (m *MockReportingRepository) GetTotalsByType(ctx context.Context, tenantID string, r portsrepo.DateRange) ([]domain.GroupTotal, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Get(0).([]domain.GroupTotal), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlySeries(ctx context.Context, tenantID string, r portsrepo.DateRange, limit int) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, tenantID, r, limit)
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

func (m *MockReportingRepository) GetTopPatients(ctx context.Context, tenantID string, r portsrepo.DateRange, limit int) ([]domain.PatientTotal, error) {
	args := m.Called(ctx, tenantID, r, limit)
	return args.Get(0).([]domain.PatientTotal), args.Error(1)
}

func (m *MockReportingRepository) GetActiveDebts(ctx context.Context, tenantID string) ([]domain.ActiveDebt, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.ActiveDebt), args.Error(1)
}

func (m *MockReportingRepository) GetDebtStats(ctx context.Context, tenantID string) (domain.DebtStats, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(domain.DebtStats), args.Error(1)
}

func (m *MockReportingRepository) GetRecentPayments(ctx context.Context, tenantID string, mode domain.PaymentMode, limit int) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, mode, limit)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockReportingRepository) GetPaymentsInRange(ctx context.Context, tenantID string, r portsrepo.DateRange) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, r)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)
