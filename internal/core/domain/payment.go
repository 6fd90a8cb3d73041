package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode defines how a payment affects the patient balance.
type PaymentMode string

const (
	PaymentModeCash        PaymentMode = "cash"
	PaymentModeInstallment PaymentMode = "installment"
	PaymentModePartial     PaymentMode = "partial"
)

// DefaultPartialPaymentType is used when a partial payment does not name its exam type.
const DefaultPartialPaymentType = "consultation"

// ErrUnknownPaymentMode is returned by ParsePaymentMode for unrecognised codes.
var ErrUnknownPaymentMode = errors.New("unknown payment mode")

// legacy codes are still sent by older front-ends
var paymentModeAliases = map[string]PaymentMode{
	"cash":             PaymentModeCash,
	"espece":           PaymentModeCash,
	"installment":      PaymentModeInstallment,
	"a_terme":          PaymentModeInstallment,
	"partial":          PaymentModePartial,
	"paiement_partiel": PaymentModePartial,
}

// ParsePaymentMode resolves a mode code (case-insensitive, legacy aliases included).
func ParsePaymentMode(raw string) (PaymentMode, error) {
	mode, ok := paymentModeAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMode, raw)
	}
	return mode, nil
}

// Valid reports whether m is one of the canonical modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeInstallment, PaymentModePartial:
		return true
	}
	return false
}

// Payment is a persisted payment record.
type Payment struct {
	ID              int64            `json:"id"`
	TenantID        string           `json:"-"`
	PatientID       *int64           `json:"patientId"`                 // Nullable once the patient is gone
	PatientName     string           `json:"patientName,omitempty"`     // Joined on read
	PatientPhone    string           `json:"patientPhone,omitempty"`    // Joined on read
	RecordingUserID *int64           `json:"recordingUserId,omitempty"` // Staff member who recorded it
	Amount          decimal.Decimal  `json:"amount"`
	PaymentType     string           `json:"paymentType"`
	Mode            PaymentMode      `json:"paymentMode"`
	TotalAmount     *decimal.Decimal `json:"totalAmount,omitempty"` // Installment only
	ReceiptCode     string           `json:"receiptCode"`
	Notes           string           `json:"notes,omitempty"`
	BalanceEffect   decimal.Decimal  `json:"balanceEffect"` // Signed change this payment applied to the balance
	PaidAt          time.Time        `json:"paidAt"`
}

// RemainingDue is total minus paid for installment payments, zero otherwise.
func (p Payment) RemainingDue() decimal.Decimal {
	if p.Mode != PaymentModeInstallment || p.TotalAmount == nil {
		return decimal.Zero
	}
	return p.TotalAmount.Sub(p.Amount)
}

// PaymentInput is a validated request to record a payment.
type PaymentInput struct {
	PatientID       int64
	Amount          decimal.Decimal
	PaymentType     string
	Mode            PaymentMode
	TotalAmount     *decimal.Decimal
	ReceiptCode     string // Caller-supplied code; empty means "issue one"
	RecordingUserID *int64
	Notes           string
}

// BalanceChange is the result of applying a payment to a balance.
type BalanceChange struct {
	Previous     decimal.Decimal
	Raw          decimal.Decimal // Before clamping
	Next         decimal.Decimal
	Effect       decimal.Decimal // Next - Previous
	RemainingDue decimal.Decimal // Installment only
	DebtCleared  *bool           // Partial only
	Message      string
}

// PaymentOutcome is returned to the caller after a payment is recorded.
type PaymentOutcome struct {
	Payment         Payment         `json:"payment"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	DebtCleared     *bool           `json:"debtCleared,omitempty"`
	ReceiptDegraded bool            `json:"receiptDegraded"`
	Message         string          `json:"message"`
}

// PaymentFilter narrows a payment listing. To is exclusive.
type PaymentFilter struct {
	PatientID   *int64
	From        *time.Time
	To          *time.Time
	Mode        *PaymentMode
	PaymentType string
}

// PaymentPage is one page of a payment listing.
type PaymentPage struct {
	Items      []Payment `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"totalPages"`
}
