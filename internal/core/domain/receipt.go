package domain

import (
	"fmt"
	"strings"
	"time"
)

// defaultExamLetter is also used for unknown exam types, so "Histologie" and
// an unrecognised type share a letter while keeping separate counters.
const defaultExamLetter = "H"

const temporaryReceiptPrefix = "TMP"

var examTypeLetters = map[string]string{
	"histologie":         "H",
	"biopsie":            "B",
	"cytologie":          "C",
	"fcv":                "F",
	"immuno-histochimie": "I",
}

// NormalizeExamType lower-cases and trims an exam/payment type.
func NormalizeExamType(paymentType string) string {
	return strings.ToLower(strings.TrimSpace(paymentType))
}

// ExamLetter maps an exam type to its receipt letter.
func ExamLetter(paymentType string) string {
	if l, ok := examTypeLetters[NormalizeExamType(paymentType)]; ok {
		return l
	}
	return defaultExamLetter
}

// MonthLetter maps January..December to A..L.
func MonthLetter(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return string(rune('A' + int(m) - 1))
}

// ReceiptBucket identifies one receipt counter.
type ReceiptBucket struct {
	TenantID string
	ExamType string // normalized
	Year     int    // year mod 100
	Month    int    // 1..12
}

// NewReceiptBucket derives the counter bucket for a payment made at now.
func NewReceiptBucket(tenantID, paymentType string, now time.Time) ReceiptBucket {
	return ReceiptBucket{
		TenantID: tenantID,
		ExamType: NormalizeExamType(paymentType),
		Year:     now.Year() % 100,
		Month:    int(now.Month()),
	}
}

// Code formats counter n for this bucket, e.g. 001H26A.
// Counters above 999 keep all their digits.
func (b ReceiptBucket) Code(n int64) string {
	return fmt.Sprintf("%03d%s%02d%s", n, ExamLetter(b.ExamType), b.Year, MonthLetter(time.Month(b.Month)))
}

// TemporaryReceiptCode is issued when the counter store is unavailable.
func TemporaryReceiptCode(now time.Time) string {
	return temporaryReceiptPrefix + now.Format("20060102150405")
}

// IsTemporaryReceiptCode reports whether code was issued in degraded mode.
func IsTemporaryReceiptCode(code string) bool {
	return strings.HasPrefix(code, temporaryReceiptPrefix)
}

// IssuedReceipt is the result of asking the sequencer for a code.
type IssuedReceipt struct {
	Code     string `json:"receiptCode"`
	Counter  int64  `json:"counter,omitempty"`
	Degraded bool   `json:"degraded"`
}

// ReceiptCounter is a persisted counter row.
type ReceiptCounter struct {
	TenantID  string    `json:"-"`
	ExamType  string    `json:"examType"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Value     int64     `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LastCode is the most recent code issued from this counter.
func (c ReceiptCounter) LastCode() string {
	return ReceiptBucket{TenantID: c.TenantID, ExamType: c.ExamType, Year: c.Year, Month: c.Month}.Code(c.Value)
}
