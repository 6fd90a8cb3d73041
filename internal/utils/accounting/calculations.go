package accounting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/SscSPs/anapath_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// ErrInvalidPayment is wrapped by every rejection from ValidatePaymentInput.
var ErrInvalidPayment = errors.New("invalid payment")

// BalanceRules applies payment-mode rules to patient balances.
// It is used by the payment service and by reconciliation so that both agree.
type BalanceRules struct {
	// CashCreditsBalance switches cash payments from "no change" to "B + paid".
	CashCreditsBalance bool
}

// ValidatePaymentInput checks the invariants every payment must satisfy before
// anything is read or written.
func ValidatePaymentInput(in domain.PaymentInput) error {
	if in.PatientID <= 0 {
		return fmt.Errorf("%w: patientId is required", ErrInvalidPayment)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidPayment)
	}
	if strings.TrimSpace(in.PaymentType) == "" {
		return fmt.Errorf("%w: paymentType is required", ErrInvalidPayment)
	}
	if !in.Mode.Valid() {
		return fmt.Errorf("%w: unknown payment mode %q", ErrInvalidPayment, in.Mode)
	}
	if domain.IsTemporaryReceiptCode(in.ReceiptCode) {
		return fmt.Errorf("%w: receiptCode %q uses the reserved TMP prefix", ErrInvalidPayment, in.ReceiptCode)
	}
	if in.Mode == domain.PaymentModeInstallment {
		if in.TotalAmount == nil {
			return fmt.Errorf("%w: totalAmount is required for installment payments", ErrInvalidPayment)
		}
		if !in.TotalAmount.GreaterThan(in.Amount) {
			return fmt.Errorf("%w: totalAmount (%s) must be greater than amount (%s)", ErrInvalidPayment,
				in.TotalAmount.String(), in.Amount.String())
		}
	}
	return nil
}

// Apply computes the balance after the payment. The input must have passed ValidatePaymentInput.
func (r BalanceRules) Apply(balance decimal.Decimal, in domain.PaymentInput) (domain.BalanceChange, error) {
	change := domain.BalanceChange{Previous: balance}

	switch in.Mode {
	case domain.PaymentModeCash:
		change.Raw = balance
		if r.CashCreditsBalance {
			change.Raw = balance.Add(in.Amount)
		}
		change.Next = change.Raw
		change.Message = fmt.Sprintf("Cash payment recorded. Balance: %s", utils.FormatAmount(change.Next))

	case domain.PaymentModeInstallment:
		if in.TotalAmount == nil || !in.TotalAmount.GreaterThan(in.Amount) {
			return domain.BalanceChange{}, fmt.Errorf("%w: totalAmount must be greater than amount", ErrInvalidPayment)
		}
		change.RemainingDue = in.TotalAmount.Sub(in.Amount)
		change.Raw = balance.Sub(change.RemainingDue)
		change.Next = change.Raw
		change.Message = fmt.Sprintf("Installment payment recorded. Remaining due: %s", utils.FormatAmount(change.RemainingDue))

	case domain.PaymentModePartial:
		change.Raw = balance.Add(in.Amount)
		cleared := !change.Raw.IsNegative()
		change.DebtCleared = &cleared
		change.Next = change.Raw
		if change.Next.IsPositive() {
			change.Next = decimal.Zero
		}
		if cleared {
			change.Message = "Partial payment recorded. Debt fully settled"
		} else {
			change.Message = fmt.Sprintf("Partial payment recorded. Remaining debt: %s", utils.FormatAmount(change.Next.Abs()))
		}

	default:
		return domain.BalanceChange{}, fmt.Errorf("%w: unknown payment mode %q", ErrInvalidPayment, in.Mode)
	}

	change.Effect = change.Next.Sub(change.Previous)
	return change, nil
}

// SumAmounts totals the paid amounts of payments.
func SumAmounts(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// TotalsByMode groups payments by mode, in canonical mode order, skipping empty modes.
func TotalsByMode(payments []domain.Payment) []domain.GroupTotal {
	order := []domain.PaymentMode{domain.PaymentModeCash, domain.PaymentModeInstallment, domain.PaymentModePartial}
	byMode := make(map[domain.PaymentMode]*domain.GroupTotal, len(order))
	for _, p := range payments {
		g, ok := byMode[p.Mode]
		if !ok {
			g = &domain.GroupTotal{Key: string(p.Mode), Total: decimal.Zero}
			byMode[p.Mode] = g
		}
		g.Count++
		g.Total = g.Total.Add(p.Amount)
	}

	out := make([]domain.GroupTotal, 0, len(byMode))
	for _, m := range order {
		if g, ok := byMode[m]; ok {
			out = append(out, *g)
		}
	}
	return out
}
