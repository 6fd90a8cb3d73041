package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/anapath_backend/internal/apperrors"
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/dto"
	"github.com/SscSPs/anapath_backend/internal/utils"
	"github.com/SscSPs/anapath_backend/internal/utils/accounting"
	"github.com/SscSPs/anapath_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// paymentService records and deletes payments, keeping patient balances in step.
type paymentService struct {
	BaseService
	paymentRepo     portsrepo.PaymentRepositoryWithTx
	patientRepo     portsrepo.PatientRepositoryFacade
	receipts        portssvc.ReceiptIssuerSvc
	rules           accounting.BalanceRules
	reconciler      BalanceReconciler
	location        *time.Location
	now             func() time.Time
	defaultPageSize int
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithBalanceRules overrides the default rule set.
func WithBalanceRules(rules accounting.BalanceRules) PaymentServiceOption {
	return func(s *paymentService) {
		s.rules = rules
	}
}

// WithBalanceReconciler sets the deletion rebalance strategy.
func WithBalanceReconciler(r BalanceReconciler) PaymentServiceOption {
	return func(s *paymentService) {
		s.reconciler = r
	}
}

// WithPaymentLocation sets the zone for receipt periods and listing date bounds.
func WithPaymentLocation(loc *time.Location) PaymentServiceOption {
	return func(s *paymentService) {
		s.location = locationOrUTC(loc)
	}
}

// WithPaymentClock replaces time.Now, mainly for tests.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.now = now
	}
}

// WithDefaultPageSize sets the page size used when a listing does not ask for one.
func WithDefaultPageSize(size int) PaymentServiceOption {
	return func(s *paymentService) {
		s.defaultPageSize = size
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	patientRepo portsrepo.PatientRepositoryFacade,
	receipts portssvc.ReceiptIssuerSvc,
	options ...PaymentServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo:     paymentRepo,
		patientRepo:     patientRepo,
		receipts:        receipts,
		location:        time.UTC,
		now:             time.Now,
		defaultPageSize: 20,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.reconciler == nil {
		svc.reconciler = RecomputeFromPayments{Payments: paymentRepo}
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment records a payment in any mode.
func (s *paymentService) RecordPayment(ctx context.Context, tenantID string, req dto.CreatePaymentRequest) (*domain.PaymentOutcome, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}

	mode, err := domain.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	in := domain.PaymentInput{
		PatientID:       req.PatientID,
		Amount:          req.Amount,
		PaymentType:     req.PaymentType,
		Mode:            mode,
		ReceiptCode:     req.ReceiptCode,
		RecordingUserID: req.RecordingUserID,
		Notes:           req.Notes,
	}
	if mode == domain.PaymentModeInstallment {
		in.TotalAmount = req.TotalAmount
	}

	return s.record(ctx, tenantID, in)
}

// RecordPartialPayment records a payment against existing debt.
func (s *paymentService) RecordPartialPayment(ctx context.Context, tenantID string, req dto.PartialPaymentRequest) (*domain.PaymentOutcome, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}

	paymentType := req.PaymentType
	if strings.TrimSpace(paymentType) == "" {
		paymentType = domain.DefaultPartialPaymentType
	}

	return s.record(ctx, tenantID, domain.PaymentInput{
		PatientID:       req.PatientID,
		Amount:          req.Amount,
		PaymentType:     paymentType,
		Mode:            domain.PaymentModePartial,
		ReceiptCode:     req.ReceiptCode,
		RecordingUserID: req.RecordingUserID,
		Notes:           req.Notes,
	})
}

// record validates in, then locks the patient, issues the receipt, inserts the
// payment and stores the new balance in one transaction.
func (s *paymentService) record(ctx context.Context, tenantID string, in domain.PaymentInput) (*domain.PaymentOutcome, error) {
	in.PaymentType = strings.TrimSpace(in.PaymentType)
	in.ReceiptCode = strings.TrimSpace(in.ReceiptCode)
	in.Notes = strings.TrimSpace(in.Notes)
	// Amounts are stored with two decimals; the balance must see the same values.
	in.Amount = utils.RoundAmount(in.Amount)
	if in.TotalAmount != nil {
		total := utils.RoundAmount(*in.TotalAmount)
		in.TotalAmount = &total
	}

	if err := accounting.ValidatePaymentInput(in); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	now := s.now().In(s.location)

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin payment transaction")
		return nil, err
	}
	defer func() { _ = s.paymentRepo.Rollback(ctx, tx) }()

	patient, err := s.patientRepo.FindPatientForUpdate(ctx, tx, tenantID, in.PatientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock patient", slog.Int64("patient_id", in.PatientID))
		}
		return nil, err
	}

	change, err := s.rules.Apply(patient.Balance, in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	payment := domain.Payment{
		TenantID:        tenantID,
		PatientID:       &patient.ID,
		RecordingUserID: in.RecordingUserID,
		Amount:          in.Amount,
		PaymentType:     in.PaymentType,
		Mode:            in.Mode,
		TotalAmount:     in.TotalAmount,
		ReceiptCode:     in.ReceiptCode,
		Notes:           in.Notes,
		BalanceEffect:   change.Effect,
	}

	var saved *domain.Payment
	degraded := false
	if payment.ReceiptCode == "" {
		saved, degraded, err = s.insertWithIssuedReceipt(ctx, tx, payment, now)
	} else {
		saved, err = s.paymentRepo.InsertPaymentInTx(ctx, tx, payment)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to insert payment", slog.Int64("patient_id", patient.ID))
		}
		return nil, err
	}
	receiptCode := saved.ReceiptCode

	if err := s.patientRepo.UpdatePatientBalanceInTx(ctx, tx, tenantID, patient.ID, change.Next); err != nil {
		s.LogError(ctx, err, "Failed to update patient balance", slog.Int64("patient_id", patient.ID))
		return nil, err
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit payment transaction", slog.Int64("patient_id", patient.ID))
		return nil, err
	}

	saved.PatientName = patient.Name
	saved.PatientPhone = patient.Phone

	s.LogInfo(ctx, "Payment recorded",
		slog.Int64("payment_id", saved.ID),
		slog.Int64("patient_id", patient.ID),
		slog.String("mode", string(in.Mode)),
		slog.String("amount", in.Amount.String()),
		slog.String("receipt_code", receiptCode),
		slog.String("previous_balance", change.Previous.String()),
		slog.String("new_balance", change.Next.String()))

	return &domain.PaymentOutcome{
		Payment:         *saved,
		NewBalance:      change.Next,
		DebtCleared:     change.DebtCleared,
		ReceiptDegraded: degraded,
		Message:         change.Message,
	}, nil
}

// insertWithIssuedReceipt issues a receipt code inside tx and inserts the payment
// under a savepoint. A generated code already taken by another payment (unknown
// exam types share the H letter, legacy clients supply their own codes) falls
// back to a TMP code instead of failing the payment.
func (s *paymentService) insertWithIssuedReceipt(ctx context.Context, tx pgx.Tx, payment domain.Payment, now time.Time) (*domain.Payment, bool, error) {
	issued := s.receipts.GenerateReceiptInTx(ctx, tx, payment.TenantID, payment.PaymentType, now)
	payment.ReceiptCode = issued.Code
	if issued.Degraded {
		saved, err := s.paymentRepo.InsertPaymentInTx(ctx, tx, payment)
		return saved, true, err
	}

	savepoint, err := tx.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open payment savepoint: %w", err)
	}

	saved, err := s.paymentRepo.InsertPaymentInTx(ctx, savepoint, payment)
	if err == nil {
		if err := savepoint.Commit(ctx); err != nil {
			return nil, false, fmt.Errorf("failed to release payment savepoint: %w", err)
		}
		return saved, false, nil
	}
	_ = savepoint.Rollback(ctx)
	if !errors.Is(err, apperrors.ErrDuplicate) {
		return nil, false, err
	}

	payment.ReceiptCode = domain.TemporaryReceiptCode(now)
	s.LogWarn(ctx, "ReceiptGenerationDegraded",
		slog.String("error", err.Error()),
		slog.String("tenant_id", payment.TenantID),
		slog.String("payment_type", payment.PaymentType),
		slog.String("receipt_code", payment.ReceiptCode))

	saved, err = s.paymentRepo.InsertPaymentInTx(ctx, tx, payment)
	return saved, true, err
}

// GetPayment retrieves a payment of the tenant.
func (s *paymentService) GetPayment(ctx context.Context, tenantID string, paymentID int64) (*domain.Payment, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, tenantID, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get payment", slog.Int64("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

// ListPayments returns one page of the tenant's payments, newest first.
func (s *paymentService) ListPayments(ctx context.Context, tenantID string, params dto.ListPaymentsParams) (*domain.PaymentPage, error) {
	if err := s.RequireTenant(tenantID); err != nil {
		return nil, err
	}

	dates, err := inclusiveRange(params.DateFrom, params.DateTo, s.location)
	if err != nil {
		return nil, err
	}
	filter := domain.PaymentFilter{
		PatientID:   params.PatientID,
		From:        dates.From,
		To:          dates.To,
		PaymentType: strings.TrimSpace(params.PaymentType),
	}
	if strings.TrimSpace(params.PaymentMode) != "" {
		mode, err := domain.ParsePaymentMode(params.PaymentMode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		filter.Mode = &mode
	}

	page := pagination.Params{Page: params.Page, PageSize: params.PageSize}.Normalize(s.defaultPageSize)

	items, total, err := s.paymentRepo.ListPayments(ctx, tenantID, filter, page.PageSize, page.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, err
	}

	return &domain.PaymentPage{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      total,
		TotalPages: pagination.TotalPages(total, page.PageSize),
	}, nil
}

// DeletePayment removes a payment and rebalances its patient in the same transaction.
func (s *paymentService) DeletePayment(ctx context.Context, tenantID string, paymentID int64) error {
	if err := s.RequireTenant(tenantID); err != nil {
		return err
	}

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin deletion transaction")
		return err
	}
	defer func() { _ = s.paymentRepo.Rollback(ctx, tx) }()

	payment, err := s.paymentRepo.FindPaymentForUpdate(ctx, tx, tenantID, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock payment", slog.Int64("payment_id", paymentID))
		}
		return err
	}

	var patient *domain.Patient
	if payment.PatientID != nil {
		patient, err = s.patientRepo.FindPatientForUpdate(ctx, tx, tenantID, *payment.PatientID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrPatientNotFound) {
				s.LogError(ctx, err, "Failed to lock patient", slog.Int64("patient_id", *payment.PatientID))
				return err
			}
			patient = nil
		}
	}

	if err := s.paymentRepo.DeletePaymentInTx(ctx, tx, tenantID, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.Int64("payment_id", paymentID))
		return err
	}

	logArgs := []any{slog.Int64("payment_id", paymentID), slog.String("receipt_code", payment.ReceiptCode)}
	if patient != nil {
		balance, err := s.reconciler.Rebalance(ctx, tx, *patient, *payment)
		if err != nil {
			s.LogError(ctx, err, "Failed to rebalance patient", slog.Int64("patient_id", patient.ID))
			return err
		}
		if err := s.patientRepo.UpdatePatientBalanceInTx(ctx, tx, tenantID, patient.ID, balance); err != nil {
			s.LogError(ctx, err, "Failed to update patient balance", slog.Int64("patient_id", patient.ID))
			return err
		}
		logArgs = append(logArgs,
			slog.Int64("patient_id", patient.ID),
			slog.String("previous_balance", patient.Balance.String()),
			slog.String("new_balance", balance.String()))
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit deletion transaction", slog.Int64("payment_id", paymentID))
		return err
	}

	s.LogInfo(ctx, "Payment deleted", logArgs...)
	return nil
}
