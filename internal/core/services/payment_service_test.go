package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/anapath_backend/internal/apperrors"
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/core/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/SscSPs/anapath_backend/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const tenant = "lab-1"

var fixedNow = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)

type PaymentServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	tx          *fakeTx
	paymentRepo *MockPaymentRepository
	patientRepo *MockPatientRepository
	counterRepo *MockReceiptCounterRepository
	service     portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.tx = &fakeTx{}
	suite.paymentRepo = new(MockPaymentRepository)
	suite.patientRepo = new(MockPatientRepository)
	suite.counterRepo = new(MockReceiptCounterRepository)

	clock := func() time.Time { return fixedNow }
	receipts := services.NewReceiptService(suite.counterRepo, services.WithReceiptClock(clock))
	suite.service = services.NewPaymentService(suite.paymentRepo, suite.patientRepo, receipts,
		services.WithPaymentClock(clock))
}

func (suite *PaymentServiceTestSuite) expectTx() {
	suite.paymentRepo.On("Begin", suite.ctx).Return(suite.tx, nil).Once()
	suite.paymentRepo.On("Rollback", suite.ctx, suite.tx).Return(nil).Once()
}

func (suite *PaymentServiceTestSuite) expectPatient(balance string) *domain.Patient {
	patient := &domain.Patient{ID: 1, TenantID: tenant, Name: "Amina", Phone: "0555", Balance: decimal.RequireFromString(balance)}
	suite.patientRepo.On("FindPatientForUpdate", suite.ctx, suite.tx, tenant, int64(1)).Return(patient, nil).Once()
	return patient
}

func (suite *PaymentServiceTestSuite) expectCounter(examType string, value int64) {
	bucket := domain.ReceiptBucket{TenantID: tenant, ExamType: examType, Year: 26, Month: 1}
	suite.counterRepo.On("IncrementCounterInTx", suite.ctx, mock.Anything, bucket).Return(value, nil).Once()
}

// expectInsert accepts the payment transaction or one of its savepoints.
func (suite *PaymentServiceTestSuite) expectInsert(check func(p domain.Payment) bool) {
	suite.paymentRepo.On("InsertPaymentInTx", suite.ctx, mock.Anything, mock.MatchedBy(check)).
		Return(func(_ context.Context, _ pgx.Tx, p domain.Payment) *domain.Payment {
			p.ID = 42
			p.PaidAt = fixedNow
			return &p
		}, nil).Once()
}

func (suite *PaymentServiceTestSuite) assertExpectations() {
	suite.paymentRepo.AssertExpectations(suite.T())
	suite.patientRepo.AssertExpectations(suite.T())
	suite.counterRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_CashLeavesBalanceUnchanged() {
	suite.expectTx()
	suite.expectPatient("-300")
	suite.expectCounter("histologie", 1)
	suite.expectInsert(func(p domain.Payment) bool {
		return p.ReceiptCode == "001H26A" && p.BalanceEffect.IsZero() && p.Mode == domain.PaymentModeCash &&
			p.TenantID == tenant && *p.PatientID == 1
	})
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("-300")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID:   1,
		Amount:      decimal.NewFromInt(1000),
		PaymentType: "Histologie",
		PaymentMode: "espece",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(42), outcome.Payment.ID)
	suite.Equal("001H26A", outcome.Payment.ReceiptCode)
	suite.Equal("Amina", outcome.Payment.PatientName)
	suite.True(outcome.NewBalance.Equal(decimal.NewFromInt(-300)))
	suite.False(outcome.ReceiptDegraded)
	suite.Nil(outcome.DebtCleared)
	suite.Require().Len(suite.tx.savepoints, 2, "receipt and insert savepoints")
	suite.True(suite.tx.savepoints[0].committed)
	suite.True(suite.tx.savepoints[1].committed)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InstallmentAddsDebt() {
	suite.expectTx()
	suite.expectPatient("0")
	suite.expectCounter("biopsie", 5)
	suite.expectInsert(func(p domain.Payment) bool {
		return p.ReceiptCode == "005B26A" && p.BalanceEffect.Equal(decimal.NewFromInt(-2000)) &&
			p.TotalAmount != nil && p.TotalAmount.Equal(decimal.NewFromInt(3000))
	})
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("-2000")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	total := decimal.NewFromInt(3000)
	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID:   1,
		Amount:      decimal.NewFromInt(1000),
		PaymentType: "biopsie",
		PaymentMode: "a_terme",
		TotalAmount: &total,
	})

	suite.Require().NoError(err)
	suite.True(outcome.NewBalance.Equal(decimal.NewFromInt(-2000)))
	suite.Contains(outcome.Message, "2000.00")
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UsesCallerReceiptCode() {
	suite.expectTx()
	suite.expectPatient("0")
	suite.expectInsert(func(p domain.Payment) bool { return p.ReceiptCode == "MANUAL-7" })
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("0")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID: 1, Amount: decimal.NewFromInt(10), PaymentType: "fcv", PaymentMode: "cash", ReceiptCode: " MANUAL-7 ",
	})

	suite.Require().NoError(err)
	suite.Equal("MANUAL-7", outcome.Payment.ReceiptCode)
	suite.Empty(suite.tx.savepoints)
	suite.counterRepo.AssertNotCalled(suite.T(), "IncrementCounterInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ReceiptFailureDegradesToTemporaryCode() {
	suite.expectTx()
	suite.expectPatient("0")
	bucket := domain.ReceiptBucket{TenantID: tenant, ExamType: "cytologie", Year: 26, Month: 1}
	suite.counterRepo.On("IncrementCounterInTx", suite.ctx, mock.Anything, bucket).Return(int64(0), errDatabaseDown).Once()
	suite.expectInsert(func(p domain.Payment) bool { return p.ReceiptCode == "TMP20260115100000" })
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("0")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID: 1, Amount: decimal.NewFromInt(10), PaymentType: "cytologie", PaymentMode: "cash",
	})

	suite.Require().NoError(err)
	suite.True(outcome.ReceiptDegraded)
	suite.Equal("TMP20260115100000", outcome.Payment.ReceiptCode)
	suite.Require().Len(suite.tx.savepoints, 1)
	suite.True(suite.tx.savepoints[0].rolledBack)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_TakenGeneratedCodeFallsBackToTemporary() {
	suite.expectTx()
	suite.expectPatient("0")
	// consultation shares the H letter with histologie, so its first code can already be taken
	suite.expectCounter("consultation", 1)
	suite.paymentRepo.On("InsertPaymentInTx", suite.ctx,
		mock.MatchedBy(func(tx pgx.Tx) bool { sp, ok := tx.(*fakeTx); return ok && sp != suite.tx }),
		mock.MatchedBy(func(p domain.Payment) bool { return p.ReceiptCode == "001H26A" })).
		Return(nil, apperrors.ErrDuplicate).Once()
	suite.paymentRepo.On("InsertPaymentInTx", suite.ctx, suite.tx,
		mock.MatchedBy(func(p domain.Payment) bool { return p.ReceiptCode == "TMP20260115100000" })).
		Return(func(_ context.Context, _ pgx.Tx, p domain.Payment) *domain.Payment {
			p.ID = 43
			return &p
		}, nil).Once()
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("0")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID: 1, Amount: decimal.NewFromInt(800), PaymentType: "consultation", PaymentMode: "cash",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(43), outcome.Payment.ID)
	suite.Equal("TMP20260115100000", outcome.Payment.ReceiptCode)
	suite.True(outcome.ReceiptDegraded)
	suite.Require().Len(suite.tx.savepoints, 2)
	suite.True(suite.tx.savepoints[1].rolledBack)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InsertFailureOnGeneratedCodeStillFails() {
	suite.expectTx()
	suite.expectPatient("0")
	suite.expectCounter("fcv", 2)
	suite.paymentRepo.On("InsertPaymentInTx", suite.ctx, mock.Anything, mock.Anything).
		Return(nil, errDatabaseDown).Once()

	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID: 1, Amount: decimal.NewFromInt(10), PaymentType: "fcv", PaymentMode: "cash",
	})

	suite.Nil(outcome)
	suite.ErrorIs(err, errDatabaseDown)
	suite.paymentRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RejectsTemporaryCallerCode() {
	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID: 1, Amount: decimal.NewFromInt(10), PaymentType: "fcv", PaymentMode: "cash", ReceiptCode: "TMP20260101000000",
	})

	suite.Nil(outcome)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.paymentRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvalidInputTouchesNothing() {
	tests := []struct {
		name string
		req  dto.CreatePaymentRequest
	}{
		{"zero amount", dto.CreatePaymentRequest{PatientID: 1, Amount: decimal.Zero, PaymentType: "fcv", PaymentMode: "cash"}},
		{"unknown mode", dto.CreatePaymentRequest{PatientID: 1, Amount: decimal.NewFromInt(5), PaymentType: "fcv", PaymentMode: "cheque"}},
		{"installment without total", dto.CreatePaymentRequest{PatientID: 1, Amount: decimal.NewFromInt(5), PaymentType: "fcv", PaymentMode: "installment"}},
		{"blank type", dto.CreatePaymentRequest{PatientID: 1, Amount: decimal.NewFromInt(5), PaymentType: " ", PaymentMode: "cash"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			outcome, err := suite.service.RecordPayment(suite.ctx, tenant, tt.req)
			suite.Nil(outcome)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.paymentRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_MissingTenant() {
	outcome, err := suite.service.RecordPayment(suite.ctx, "  ", dto.CreatePaymentRequest{
		PatientID: 1, Amount: decimal.NewFromInt(5), PaymentType: "fcv", PaymentMode: "cash",
	})
	suite.Nil(outcome)
	suite.ErrorIs(err, apperrors.ErrMissingTenant)
	suite.paymentRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PatientNotFoundRollsBack() {
	suite.expectTx()
	suite.patientRepo.On("FindPatientForUpdate", suite.ctx, suite.tx, tenant, int64(9)).
		Return(nil, apperrors.ErrPatientNotFound).Once()

	outcome, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID: 9, Amount: decimal.NewFromInt(5), PaymentType: "fcv", PaymentMode: "cash",
	})

	suite.Nil(outcome)
	suite.ErrorIs(err, apperrors.ErrPatientNotFound)
	suite.paymentRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.paymentRepo.AssertNotCalled(suite.T(), "InsertPaymentInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DuplicateReceiptCode() {
	suite.expectTx()
	suite.expectPatient("0")
	suite.paymentRepo.On("InsertPaymentInTx", suite.ctx, suite.tx, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.RecordPayment(suite.ctx, tenant, dto.CreatePaymentRequest{
		PatientID: 1, Amount: decimal.NewFromInt(5), PaymentType: "fcv", PaymentMode: "cash", ReceiptCode: "001F26A",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.patientRepo.AssertNotCalled(suite.T(), "UpdatePatientBalanceInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPartialPayment_ClampsAtZero() {
	suite.expectTx()
	suite.expectPatient("-500")
	suite.expectCounter(domain.DefaultPartialPaymentType, 3)
	suite.expectInsert(func(p domain.Payment) bool {
		return p.Mode == domain.PaymentModePartial && p.PaymentType == "consultation" &&
			p.ReceiptCode == "003H26A" && p.BalanceEffect.Equal(decimal.NewFromInt(500))
	})
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("0")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	outcome, err := suite.service.RecordPartialPayment(suite.ctx, tenant, dto.PartialPaymentRequest{
		PatientID: 1,
		Amount:    decimal.NewFromInt(700),
	})

	suite.Require().NoError(err)
	suite.True(outcome.NewBalance.IsZero())
	suite.Require().NotNil(outcome.DebtCleared)
	suite.True(*outcome.DebtCleared)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestRecordPartialPayment_KeepsRemainingDebt() {
	suite.expectTx()
	suite.expectPatient("-500")
	suite.expectCounter("histologie", 1)
	suite.expectInsert(func(p domain.Payment) bool { return p.Mode == domain.PaymentModePartial })
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("-300")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	outcome, err := suite.service.RecordPartialPayment(suite.ctx, tenant, dto.PartialPaymentRequest{
		PatientID:   1,
		Amount:      decimal.NewFromInt(200),
		PaymentType: "histologie",
	})

	suite.Require().NoError(err)
	suite.True(outcome.NewBalance.Equal(decimal.NewFromInt(-300)))
	suite.False(*outcome.DebtCleared)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_RecomputesFromRemainingPayments() {
	patientID := int64(1)
	suite.expectTx()
	suite.paymentRepo.On("FindPaymentForUpdate", suite.ctx, suite.tx, tenant, int64(42)).Return(&domain.Payment{
		ID: 42, TenantID: tenant, PatientID: &patientID, Amount: decimal.NewFromInt(1000),
		Mode: domain.PaymentModeInstallment, BalanceEffect: decimal.NewFromInt(-2000),
	}, nil).Once()
	suite.expectPatient("-2000")
	suite.paymentRepo.On("DeletePaymentInTx", suite.ctx, suite.tx, tenant, int64(42)).Return(nil).Once()
	suite.paymentRepo.On("SumPaymentsForPatientInTx", suite.ctx, suite.tx, tenant, int64(1)).Return(decimal.NewFromInt(1500), nil).Once()
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("1500")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	suite.Require().NoError(suite.service.DeletePayment(suite.ctx, tenant, 42))
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_ReverseStrategyRestoresPriorBalance() {
	service := services.NewPaymentService(suite.paymentRepo, suite.patientRepo,
		services.NewReceiptService(suite.counterRepo),
		services.WithBalanceReconciler(services.ReverseRecordedEffect{}))

	patientID := int64(1)
	suite.expectTx()
	suite.paymentRepo.On("FindPaymentForUpdate", suite.ctx, suite.tx, tenant, int64(42)).Return(&domain.Payment{
		ID: 42, TenantID: tenant, PatientID: &patientID, BalanceEffect: decimal.NewFromInt(-2000),
	}, nil).Once()
	suite.expectPatient("-2500")
	suite.paymentRepo.On("DeletePaymentInTx", suite.ctx, suite.tx, tenant, int64(42)).Return(nil).Once()
	suite.patientRepo.On("UpdatePatientBalanceInTx", suite.ctx, suite.tx, tenant, int64(1), decEq("-500")).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	suite.Require().NoError(service.DeletePayment(suite.ctx, tenant, 42))
	suite.paymentRepo.AssertNotCalled(suite.T(), "SumPaymentsForPatientInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_OrphanPaymentSkipsRebalance() {
	suite.expectTx()
	suite.paymentRepo.On("FindPaymentForUpdate", suite.ctx, suite.tx, tenant, int64(7)).
		Return(&domain.Payment{ID: 7, TenantID: tenant}, nil).Once()
	suite.paymentRepo.On("DeletePaymentInTx", suite.ctx, suite.tx, tenant, int64(7)).Return(nil).Once()
	suite.paymentRepo.On("Commit", suite.ctx, suite.tx).Return(nil).Once()

	suite.Require().NoError(suite.service.DeletePayment(suite.ctx, tenant, 7))
	suite.patientRepo.AssertNotCalled(suite.T(), "UpdatePatientBalanceInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_NotFound() {
	suite.expectTx()
	suite.paymentRepo.On("FindPaymentForUpdate", suite.ctx, suite.tx, tenant, int64(99)).
		Return(nil, apperrors.ErrPaymentNotFound).Once()

	err := suite.service.DeletePayment(suite.ctx, tenant, 99)

	suite.ErrorIs(err, apperrors.ErrPaymentNotFound)
	suite.paymentRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestListPayments_BuildsFilterAndPages() {
	patientID := int64(3)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mode := domain.PaymentModePartial

	suite.paymentRepo.On("ListPayments", suite.ctx, tenant, domain.PaymentFilter{
		PatientID: &patientID, From: &from, To: &to, Mode: &mode, PaymentType: "fcv",
	}, 20, 40).Return([]domain.Payment{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}, int64(45), nil).Once()

	page, err := suite.service.ListPayments(suite.ctx, tenant, dto.ListPaymentsParams{
		Page: 3, PatientID: &patientID, DateFrom: "2026-01-01", DateTo: "2026-01-31",
		PaymentMode: "paiement_partiel", PaymentType: "fcv",
	})

	suite.Require().NoError(err)
	suite.Equal(3, page.Page)
	suite.Equal(20, page.PageSize)
	suite.Equal(int64(45), page.Total)
	suite.Equal(3, page.TotalPages)
	suite.Len(page.Items, 5)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestListPayments_FarPageReadsEmptyInsteadOfOverflowing() {
	suite.paymentRepo.On("ListPayments", suite.ctx, tenant, domain.PaymentFilter{}, 100, math.MaxInt).
		Return([]domain.Payment{}, int64(45), nil).Once()

	page, err := suite.service.ListPayments(suite.ctx, tenant, dto.ListPaymentsParams{Page: 1 << 62, PageSize: 100})

	suite.Require().NoError(err)
	suite.Empty(page.Items)
	suite.Equal(1, page.TotalPages)
	suite.assertExpectations()
}

func (suite *PaymentServiceTestSuite) TestListPayments_RejectsBadDates() {
	_, err := suite.service.ListPayments(suite.ctx, tenant, dto.ListPaymentsParams{DateFrom: "2026-02-01", DateTo: "2026-01-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListPayments(suite.ctx, tenant, dto.ListPaymentsParams{DateFrom: "01/02/2026"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

// Reversing the recorded effect of a payment returns the balance to what it was before it.
func TestReverseRecordedEffect_UndoesEveryMode(t *testing.T) {
	total := decimal.NewFromInt(900)
	inputs := []domain.PaymentInput{
		{PatientID: 1, Amount: decimal.NewFromInt(100), PaymentType: "fcv", Mode: domain.PaymentModeCash},
		{PatientID: 1, Amount: decimal.NewFromInt(100), PaymentType: "fcv", Mode: domain.PaymentModeInstallment, TotalAmount: &total},
		{PatientID: 1, Amount: decimal.NewFromInt(100), PaymentType: "fcv", Mode: domain.PaymentModePartial},
		{PatientID: 1, Amount: decimal.NewFromInt(5000), PaymentType: "fcv", Mode: domain.PaymentModePartial},
	}
	for _, rules := range []accounting.BalanceRules{{}, {CashCreditsBalance: true}} {
		for _, in := range inputs {
			before := decimal.NewFromInt(-450)
			change, err := rules.Apply(before, in)
			if err != nil {
				t.Fatal(err)
			}
			restored, err := services.ReverseRecordedEffect{}.Rebalance(context.Background(), nil,
				domain.Patient{Balance: change.Next}, domain.Payment{BalanceEffect: change.Effect})
			if err != nil {
				t.Fatal(err)
			}
			if !restored.Equal(before) {
				t.Errorf("mode %s: restored %s, want %s", in.Mode, restored, before)
			}
		}
	}
}
