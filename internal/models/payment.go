package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors a row of the paiements table, optionally joined with patients.
type Payment struct {
	ID            int64               `db:"id"`
	UserID        string              `db:"user_id"` // Tenant
	PatientID     *int64              `db:"patient_id"`
	UtilisateurID *int64              `db:"utilisateur_id"`
	Montant       decimal.Decimal     `db:"montant"`
	TypePaiement  string              `db:"type_paiement"`
	ModePaiement  string              `db:"mode_paiement"`
	MontantTotal  decimal.NullDecimal `db:"montant_total"`
	NumeroCR      *string             `db:"numero_cr"`
	Notes         *string             `db:"notes"`
	EffetSolde    decimal.Decimal     `db:"effet_solde"`
	DatePaiement  time.Time           `db:"date_paiement"`

	// Joined from patients
	PatientNom       *string `db:"patient_nom"`
	PatientTelephone *string `db:"patient_telephone"`
}

// ReceiptCounter mirrors a row of the compteurs_recus table.
type ReceiptCounter struct {
	UserID     string    `db:"user_id"`
	TypeExamen string    `db:"type_examen"`
	Annee      int16     `db:"annee"`
	Mois       int16     `db:"mois"`
	Compteur   int64     `db:"compteur"`
	UpdatedAt  time.Time `db:"updated_at"`
}
