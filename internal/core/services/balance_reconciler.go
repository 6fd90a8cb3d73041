package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/SscSPs/anapath_backend/internal/platform/config"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BalanceReconciler computes a patient's balance after one of their payments is deleted.
// It runs inside the deletion transaction, after the row is gone and with the patient locked.
type BalanceReconciler interface {
	Rebalance(ctx context.Context, tx pgx.Tx, patient domain.Patient, deleted domain.Payment) (decimal.Decimal, error)
}

// RecomputeFromPayments sets the balance to the sum of the remaining paid amounts.
type RecomputeFromPayments struct {
	Payments portsrepo.PaymentTransactionSupport
}

func (r RecomputeFromPayments) Rebalance(ctx context.Context, tx pgx.Tx, patient domain.Patient, _ domain.Payment) (decimal.Decimal, error) {
	total, err := r.Payments.SumPaymentsForPatientInTx(ctx, tx, patient.TenantID, patient.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to recompute balance of patient %d: %w", patient.ID, err)
	}
	return total, nil
}

// ReverseRecordedEffect undoes exactly the change the deleted payment applied.
type ReverseRecordedEffect struct{}

func (ReverseRecordedEffect) Rebalance(_ context.Context, _ pgx.Tx, patient domain.Patient, deleted domain.Payment) (decimal.Decimal, error) {
	return patient.Balance.Sub(deleted.BalanceEffect), nil
}

// NewBalanceReconciler picks the strategy named by LEDGER_DELETE_STRATEGY.
func NewBalanceReconciler(strategy string, payments portsrepo.PaymentTransactionSupport) BalanceReconciler {
	if strategy == config.DeleteStrategyReverse {
		return ReverseRecordedEffect{}
	}
	return RecomputeFromPayments{Payments: payments}
}
