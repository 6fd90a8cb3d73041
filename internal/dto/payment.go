package dto

import (
	"time"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment in any mode.
type CreatePaymentRequest struct {
	PatientID       int64            `json:"patientId" binding:"required,gt=0"`
	Amount          decimal.Decimal  `json:"amount" binding:"required,gt=0"`
	PaymentType     string           `json:"paymentType" binding:"required,max=100"`
	PaymentMode     string           `json:"paymentMode" binding:"required,paymentmode"` // cash, installment, partial (legacy codes accepted)
	TotalAmount     *decimal.Decimal `json:"totalAmount,omitempty"`                      // Installment only
	ReceiptCode     string           `json:"receiptCode,omitempty" binding:"omitempty,max=32"`
	RecordingUserID *int64           `json:"recordingUserId,omitempty"`
	Notes           string           `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

// PartialPaymentRequest defines a payment applied against existing debt.
type PartialPaymentRequest struct {
	PatientID       int64           `json:"patientId" binding:"required,gt=0"`
	Amount          decimal.Decimal `json:"amount" binding:"required,gt=0"`
	PaymentType     string          `json:"paymentType,omitempty" binding:"omitempty,max=100"` // Defaults to consultation
	ReceiptCode     string          `json:"receiptCode,omitempty" binding:"omitempty,max=32"`
	RecordingUserID *int64          `json:"recordingUserId,omitempty"`
	Notes           string          `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

// PaymentCreatedResponse is returned after a payment is recorded.
type PaymentCreatedResponse struct {
	ID              int64           `json:"id"`
	Timestamp       time.Time       `json:"timestamp"`
	ReceiptCode     string          `json:"receiptCode"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	Message         string          `json:"message"`
	DebtCleared     *bool           `json:"debtCleared,omitempty"`
	ReceiptDegraded bool            `json:"receiptDegraded,omitempty"`
}

// ToPaymentCreatedResponse converts a domain.PaymentOutcome to the response DTO
func ToPaymentCreatedResponse(o *domain.PaymentOutcome) PaymentCreatedResponse {
	return PaymentCreatedResponse{
		ID:              o.Payment.ID,
		Timestamp:       o.Payment.PaidAt,
		ReceiptCode:     o.Payment.ReceiptCode,
		NewBalance:      o.NewBalance,
		Message:         o.Message,
		DebtCleared:     o.DebtCleared,
		ReceiptDegraded: o.ReceiptDegraded,
	}
}

// ListPaymentsParams defines the query parameters for listing payments.
// Dates are YYYY-MM-DD and both ends are inclusive.
type ListPaymentsParams struct {
	Page        int    `form:"page" binding:"omitempty,gte=1"`
	PageSize    int    `form:"pageSize" binding:"omitempty,gte=1,lte=100"`
	PatientID   *int64 `form:"patientId" binding:"omitempty,gt=0"`
	DateFrom    string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo      string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	PaymentMode string `form:"paymentMode" binding:"omitempty,paymentmode"`
	PaymentType string `form:"paymentType"`
}

// DeletePaymentResponse confirms a deletion.
type DeletePaymentResponse struct {
	Message string `json:"message"`
}
