package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStats holds the general aggregates over a set of payments.
type PaymentStats struct {
	Count            int64           `json:"count"`
	Total            decimal.Decimal `json:"total"`
	Average          decimal.Decimal `json:"average"`
	Min              decimal.Decimal `json:"min"`
	Max              decimal.Decimal `json:"max"`
	DistinctPatients int64           `json:"distinctPatients"`
}

// GroupTotal is a count/sum pair for one mode or one payment type.
type GroupTotal struct {
	Key   string          `json:"key"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyTotal is one point of the monthly series, Month formatted YYYY-MM.
type MonthlyTotal struct {
	Month string          `json:"month"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PatientTotal ranks a patient by how much they paid.
type PatientTotal struct {
	PatientID int64           `json:"patientId"`
	Name      string          `json:"name"`
	Count     int64           `json:"count"`
	Total     decimal.Decimal `json:"total"`
}

// PaymentStatistics groups every aggregate of the statistics report.
type PaymentStatistics struct {
	General     PaymentStats   `json:"general"`
	ByMode      []GroupTotal   `json:"byMode"`
	ByType      []GroupTotal   `json:"byType"`
	Monthly     []MonthlyTotal `json:"monthly"`     // At most 12 rows, most recent first
	TopPatients []PatientTotal `json:"topPatients"` // At most 10 rows
}

// ActiveDebt is a patient whose balance is negative.
type ActiveDebt struct {
	PatientID     int64           `json:"patientId"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Debt          decimal.Decimal `json:"debt"` // abs(Balance)
	PaymentCount  int64           `json:"paymentCount"`
	LastPaymentAt *time.Time      `json:"lastPaymentAt,omitempty"`
}

// DebtStats aggregates outstanding debt, all amounts positive.
type DebtStats struct {
	IndebtedPatients int64           `json:"indebtedPatients"`
	TotalDebt        decimal.Decimal `json:"totalDebt"`
	AverageDebt      decimal.Decimal `json:"averageDebt"`
	MaxDebt          decimal.Decimal `json:"maxDebt"`
}

// DebtStatistics is DebtStats plus the most recent partial payments.
type DebtStatistics struct {
	DebtStats
	RecentPartialPayments []Payment `json:"recentPartialPayments"`
}

// DailyReport lists one calendar day of payments.
type DailyReport struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Payments []Payment       `json:"payments"`
	ByMode   []GroupTotal    `json:"byMode"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// InstallmentDetail describes one installment plan of a patient.
type InstallmentDetail struct {
	PaymentID   int64           `json:"paymentId"`
	Paid        decimal.Decimal `json:"paid"`
	Total       decimal.Decimal `json:"total"`
	Remaining   decimal.Decimal `json:"remaining"`
	ReceiptCode string          `json:"receiptCode"`
	PaidAt      time.Time       `json:"paidAt"`
}

// PatientSummary is the payment overview of a single patient.
type PatientSummary struct {
	Patient          Patient             `json:"patient"`
	Payments         []Payment           `json:"payments"`
	TotalPaid        decimal.Decimal     `json:"totalPaid"`
	InstallmentCount int                 `json:"installmentCount"`
	PartialCount     int                 `json:"partialCount"`
	CurrentBalance   decimal.Decimal     `json:"currentBalance"`
	LastPayment      *Payment            `json:"lastPayment,omitempty"`
	Installments     []InstallmentDetail `json:"installments"`
}

// PatientHistory is the chronological payment list of a patient, newest first.
type PatientHistory struct {
	PatientID   int64     `json:"patientId"`
	PatientName string    `json:"patientName"`
	Payments    []Payment `json:"payments"`
	Count       int       `json:"count"`
}
