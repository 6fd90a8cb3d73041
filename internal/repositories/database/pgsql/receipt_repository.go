package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/SscSPs/anapath_backend/internal/models"
	"github.com/SscSPs/anapath_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReceiptCounterRepository stores one counter per (tenant, exam type, year, month).
type PgxReceiptCounterRepository struct {
	BaseRepository
}

func newPgxReceiptCounterRepository(pool *pgxpool.Pool) *PgxReceiptCounterRepository {
	return &PgxReceiptCounterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptCounterRepository = (*PgxReceiptCounterRepository)(nil)

// IncrementCounterInTx creates the bucket at 1 or increments it in a single statement,
// so concurrent callers on one bucket serialize on the row and never share a value.
func (r *PgxReceiptCounterRepository) IncrementCounterInTx(ctx context.Context, tx pgx.Tx, bucket domain.ReceiptBucket) (int64, error) {
	query := `
		INSERT INTO compteurs_recus (user_id, type_examen, annee, mois, compteur, updated_at)
		VALUES ($1, $2, $3, $4, 1, now())
		ON CONFLICT (user_id, type_examen, annee, mois)
		DO UPDATE SET compteur = compteurs_recus.compteur + 1, updated_at = now()
		RETURNING compteur`

	var counter int64
	err := tx.QueryRow(ctx, query, bucket.TenantID, bucket.ExamType, int16(bucket.Year), int16(bucket.Month)).Scan(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to increment receipt counter %s/%02d/%02d: %w", bucket.ExamType, bucket.Year, bucket.Month, err)
	}
	return counter, nil
}

// ListCounters returns the tenant's counters, most recent period first.
func (r *PgxReceiptCounterRepository) ListCounters(ctx context.Context, tenantID string, year *int) ([]domain.ReceiptCounter, error) {
	where := newWhere("user_id", tenantID)
	if year != nil {
		where.add("annee = ?", int16(*year))
	}

	query := `SELECT user_id, type_examen, annee, mois, compteur, updated_at
		FROM compteurs_recus ` + where.sql() + `
		ORDER BY annee DESC, mois DESC, type_examen`

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipt counters: %w", err)
	}
	defer rows.Close()

	result := []domain.ReceiptCounter{}
	for rows.Next() {
		var m models.ReceiptCounter
		if err := rows.Scan(&m.UserID, &m.TypeExamen, &m.Annee, &m.Mois, &m.Compteur, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning receipt counter: %w", err)
		}
		result = append(result, mapping.ToDomainReceiptCounter(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receipt counters: %w", err)
	}
	return result, nil
}
