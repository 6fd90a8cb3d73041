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

const patientColumns = `id, user_id, nom, age, sexe, telephone, adresse, solde, created_at`

// PgxPatientRepository stores patients and their cached balance.
type PgxPatientRepository struct {
	BaseRepository
}

func newPgxPatientRepository(pool *pgxpool.Pool) *PgxPatientRepository {
	return &PgxPatientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PatientRepositoryFacade = (*PgxPatientRepository)(nil)

func scanPatient(row pgx.Row) (models.Patient, error) {
	var m models.Patient
	err := row.Scan(&m.ID, &m.UserID, &m.Nom, &m.Age, &m.Sexe, &m.Telephone, &m.Adresse, &m.Solde, &m.CreatedAt)
	return m, err
}

// SavePatient inserts a new patient with a zero balance.
func (r *PgxPatientRepository) SavePatient(ctx context.Context, patient domain.Patient) (*domain.Patient, error) {
	m := mapping.ToModelPatient(patient)

	query := `
		INSERT INTO patients (user_id, nom, age, sexe, telephone, adresse, solde)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING ` + patientColumns

	saved, err := scanPatient(r.Pool.QueryRow(ctx, query, m.UserID, m.Nom, m.Age, m.Sexe, m.Telephone, m.Adresse))
	if err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}

	d := mapping.ToDomainPatient(saved)
	return &d, nil
}

// FindPatientByID retrieves a patient of the tenant.
func (r *PgxPatientRepository) FindPatientByID(ctx context.Context, tenantID string, patientID int64) (*domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1 AND user_id = $2`
	return r.findOne(ctx, r.Pool, query, patientID, tenantID)
}

// FindPatientForUpdate locks the patient row for the rest of tx.
func (r *PgxPatientRepository) FindPatientForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64) (*domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return r.findOne(ctx, tx, query, patientID, tenantID)
}

// UpdatePatientBalanceInTx stores the new balance within tx.
func (r *PgxPatientRepository) UpdatePatientBalanceInTx(ctx context.Context, tx pgx.Tx, tenantID string, patientID int64, balance decimal.Decimal) error {
	tag, err := tx.Exec(ctx, `UPDATE patients SET solde = $1 WHERE id = $2 AND user_id = $3`, balance, patientID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to update balance of patient %d: %w", patientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPatientNotFound
	}
	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PgxPatientRepository) findOne(ctx context.Context, q rowQuerier, query string, patientID int64, tenantID string) (*domain.Patient, error) {
	m, err := scanPatient(q.QueryRow(ctx, query, patientID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to find patient %d: %w", patientID, err)
	}
	d := mapping.ToDomainPatient(m)
	return &d, nil
}
