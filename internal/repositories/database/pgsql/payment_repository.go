package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/anapath_backend/internal/apperrors"
	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/SscSPs/anapath_backend/internal/models"
	"github.com/SscSPs/anapath_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const paymentColumns = `p.id, p.user_id, p.patient_id, p.utilisateur_id, p.montant, p.type_paiement, p.mode_paiement,
	p.montant_total, p.numero_cr, p.notes, p.effet_solde, p.date_paiement`

// paymentSelect joins the owning patient within the same tenant.
const paymentSelect = `SELECT ` + paymentColumns + `, pt.nom, pt.telephone
	FROM paiements p
	LEFT JOIN patients pt ON pt.id = p.patient_id AND pt.user_id = p.user_id `

// newest first; id breaks ties so pages are stable
const paymentOrder = ` ORDER BY p.date_paiement DESC, p.id DESC`

// PgxPaymentRepository stores payment records.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.ID, &m.UserID, &m.PatientID, &m.UtilisateurID, &m.Montant, &m.TypePaiement, &m.ModePaiement,
		&m.MontantTotal, &m.NumeroCR, &m.Notes, &m.EffetSolde, &m.DatePaiement,
		&m.PatientNom, &m.PatientTelephone,
	)
	return m, err
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	defer rows.Close()

	result := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		result = append(result, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return result, nil
}

// InsertPaymentInTx inserts the payment; id and timestamp are assigned by the database.
func (r *PgxPaymentRepository) InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO paiements (user_id, patient_id, utilisateur_id, montant, type_paiement, mode_paiement,
			montant_total, numero_cr, notes, effet_solde)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, date_paiement`

	err := tx.QueryRow(ctx, query,
		m.UserID, m.PatientID, m.UtilisateurID, m.Montant, m.TypePaiement, m.ModePaiement,
		m.MontantTotal, m.NumeroCR, m.Notes, m.EffetSolde,
	).Scan(&m.ID, &m.DatePaiement)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: receipt code %s is already used", apperrors.ErrDuplicate, payment.ReceiptCode)
		}
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	saved := payment
	saved.ID = m.ID
	saved.PaidAt = m.DatePaiement
	return &saved, nil
}

// FindPaymentByID retrieves a payment of the tenant.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, tenantID string, paymentID int64) (*domain.Payment, error) {
	m, err := scanPayment(r.Pool.QueryRow(ctx, paymentSelect+`WHERE p.id = $1 AND p.user_id = $2`, paymentID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find payment %d: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// FindPaymentForUpdate locks the payment row for the rest of tx.
func (r *PgxPaymentRepository) FindPaymentForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, paymentID int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `, NULL::text, NULL::text
		FROM paiements p
		WHERE p.id = $1 AND p.user_id = $2
		FOR UPDATE`

	m, err := scanPayment(tx.QueryRow(ctx, query, paymentID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to lock payment %d: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// DeletePaymentInTx removes the payment within tx.
func (r *PgxPaymentRepository) DeletePaymentInTx(ctx context.Context, tx pgx.Tx, tenantID string, paymentID int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM paiements WHERE id = $1 AND user_id = $2`, paymentID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// SumPaymentsForPatientInTx sums the amounts of the patient's remaining payments.
func (r *PgxPaymentRepository) SumPaymentsForPatientInTx(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(montant), 0) FROM paiements WHERE patient_id = $1 AND user_id = $2`,
		patientID, tenantID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments of patient %d: %w", patientID, err)
	}
	return total, nil
}

// ListPayments returns one page of payments matching filter and the total match count.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, tenantID string, filter domain.PaymentFilter, limit, offset int) ([]domain.Payment, int64, error) {
	where := newWhere("p.user_id", tenantID)
	if filter.PatientID != nil {
		where.add("p.patient_id = ?", *filter.PatientID)
	}
	where.addRange("p.date_paiement", portsrepo.DateRange{From: filter.From, To: filter.To})
	if filter.Mode != nil {
		where.add("p.mode_paiement = ?", string(*filter.Mode))
	}
	if filter.PaymentType != "" {
		where.add("LOWER(p.type_paiement) = LOWER(?)", filter.PaymentType)
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM paiements p `+where.sql(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := paymentSelect + where.sql() + paymentOrder +
		fmt.Sprintf(" LIMIT %s OFFSET %s", where.next(limit), where.next(offset))

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	payments, err := collectPayments(rows)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// ListPaymentsByPatient returns every payment of the patient, newest first.
func (r *PgxPaymentRepository) ListPaymentsByPatient(ctx context.Context, tenantID string, patientID int64) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, paymentSelect+`WHERE p.user_id = $1 AND p.patient_id = $2`+paymentOrder, tenantID, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments of patient %d: %w", patientID, err)
	}
	return collectPayments(rows)
}
