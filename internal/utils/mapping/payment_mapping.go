package mapping

import (
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	"github.com/SscSPs/anapath_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		ID:            d.ID,
		UserID:        d.TenantID,
		PatientID:     d.PatientID,
		UtilisateurID: d.RecordingUserID,
		Montant:       d.Amount,
		TypePaiement:  d.PaymentType,
		ModePaiement:  string(d.Mode),
		NumeroCR:      nullableString(d.ReceiptCode),
		Notes:         nullableString(d.Notes),
		EffetSolde:    d.BalanceEffect,
		DatePaiement:  d.PaidAt,
	}
	if d.TotalAmount != nil {
		m.MontantTotal = decimal.NewNullDecimal(*d.TotalAmount)
	}
	return m
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		ID:              m.ID,
		TenantID:        m.UserID,
		PatientID:       m.PatientID,
		PatientName:     stringValue(m.PatientNom),
		PatientPhone:    stringValue(m.PatientTelephone),
		RecordingUserID: m.UtilisateurID,
		Amount:          m.Montant,
		PaymentType:     m.TypePaiement,
		Mode:            domain.PaymentMode(m.ModePaiement),
		ReceiptCode:     stringValue(m.NumeroCR),
		Notes:           stringValue(m.Notes),
		BalanceEffect:   m.EffetSolde,
		PaidAt:          m.DatePaiement,
	}
	if m.MontantTotal.Valid {
		total := m.MontantTotal.Decimal
		d.TotalAmount = &total
	}
	return d
}

// ToDomainPayments converts a slice of model Payments
func ToDomainPayments(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}

// ToDomainReceiptCounter converts a model ReceiptCounter to a domain ReceiptCounter
func ToDomainReceiptCounter(m models.ReceiptCounter) domain.ReceiptCounter {
	return domain.ReceiptCounter{
		TenantID:  m.UserID,
		ExamType:  m.TypeExamen,
		Year:      int(m.Annee),
		Month:     int(m.Mois),
		Value:     m.Compteur,
		UpdatedAt: m.UpdatedAt,
	}
}
