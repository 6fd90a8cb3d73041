package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/anapath_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetPaymentStats computes the general aggregates over the range
func (r *reportingRepository) GetPaymentStats(ctx context.Context, tenantID string, dr portsrepo.DateRange) (domain.PaymentStats, error) {
	where := newWhere("user_id", tenantID)
	where.addRange("date_paiement", dr)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(montant), 0),
			COALESCE(ROUND(AVG(montant), 2), 0),
			COALESCE(MIN(montant), 0),
			COALESCE(MAX(montant), 0),
			COUNT(DISTINCT patient_id)
		FROM paiements ` + where.sql()

	var s domain.PaymentStats
	err := r.Pool.QueryRow(ctx, query, where.args...).Scan(&s.Count, &s.Total, &s.Average, &s.Min, &s.Max, &s.DistinctPatients)
	if err != nil {
		return domain.PaymentStats{}, fmt.Errorf("error querying payment stats: %w", err)
	}
	return s, nil
}

// GetTotalsByMode groups the range by payment mode
func (r *reportingRepository) GetTotalsByMode(ctx context.Context, tenantID string, dr portsrepo.DateRange) ([]domain.GroupTotal, error) {
	return r.groupTotals(ctx, "mode_paiement", tenantID, dr)
}

// GetTotalsByType groups the range by payment type
func (r *reportingRepository) GetTotalsByType(ctx context.Context, tenantID string, dr portsrepo.DateRange) ([]domain.GroupTotal, error) {
	return r.groupTotals(ctx, "type_paiement", tenantID, dr)
}

// column is one of our own constants, never caller input
func (r *reportingRepository) groupTotals(ctx context.Context, column, tenantID string, dr portsrepo.DateRange) ([]domain.GroupTotal, error) {
	where := newWhere("user_id", tenantID)
	where.addRange("date_paiement", dr)

	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*), COALESCE(SUM(montant), 0) AS total
		FROM paiements %[2]s
		GROUP BY %[1]s
		ORDER BY total DESC, %[1]s`, column, where.sql())

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying totals by %s: %w", column, err)
	}
	defer rows.Close()

	result := []domain.GroupTotal{}
	for rows.Next() {
		var g domain.GroupTotal
		if err := rows.Scan(&g.Key, &g.Count, &g.Total); err != nil {
			return nil, fmt.Errorf("error scanning totals by %s: %w", column, err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals by %s: %w", column, err)
	}
	return result, nil
}

// GetMonthlySeries returns up to limit months, most recent first
func (r *reportingRepository) GetMonthlySeries(ctx context.Context, tenantID string, dr portsrepo.DateRange, limit int) ([]domain.MonthlyTotal, error) {
	where := newWhere("user_id", tenantID)
	where.addRange("date_paiement", dr)

	query := `
		SELECT TO_CHAR(date_paiement, 'YYYY-MM') AS mois, COUNT(*), COALESCE(SUM(montant), 0)
		FROM paiements ` + where.sql() + `
		GROUP BY mois
		ORDER BY mois DESC
		LIMIT ` + where.next(limit)

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly series: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyTotal{}
	for rows.Next() {
		var m domain.MonthlyTotal
		if err := rows.Scan(&m.Month, &m.Count, &m.Total); err != nil {
			return nil, fmt.Errorf("error scanning monthly series: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly series: %w", err)
	}
	return result, nil
}

// GetTopPatients ranks patients by total paid
func (r *reportingRepository) GetTopPatients(ctx context.Context, tenantID string, dr portsrepo.DateRange, limit int) ([]domain.PatientTotal, error) {
	where := newWhere("p.user_id", tenantID)
	where.addRange("p.date_paiement", dr)

	query := `
		SELECT pt.id, pt.nom, COUNT(p.id), COALESCE(SUM(p.montant), 0) AS total
		FROM paiements p
		JOIN patients pt ON pt.id = p.patient_id AND pt.user_id = p.user_id
		` + where.sql() + `
		GROUP BY pt.id, pt.nom
		ORDER BY total DESC, pt.id
		LIMIT ` + where.next(limit)

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying top patients: %w", err)
	}
	defer rows.Close()

	result := []domain.PatientTotal{}
	for rows.Next() {
		var p domain.PatientTotal
		if err := rows.Scan(&p.PatientID, &p.Name, &p.Count, &p.Total); err != nil {
			return nil, fmt.Errorf("error scanning top patients: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top patients: %w", err)
	}
	return result, nil
}

// GetActiveDebts lists patients with a negative balance, largest debt first
func (r *reportingRepository) GetActiveDebts(ctx context.Context, tenantID string) ([]domain.ActiveDebt, error) {
	query := `
		SELECT pt.id, pt.nom, pt.telephone, pt.solde, COUNT(p.id), MAX(p.date_paiement)
		FROM patients pt
		LEFT JOIN paiements p ON p.patient_id = pt.id AND p.user_id = pt.user_id
		WHERE pt.user_id = $1 AND pt.solde < 0
		GROUP BY pt.id
		ORDER BY ABS(pt.solde) DESC, pt.id`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying active debts: %w", err)
	}
	defer rows.Close()

	result := []domain.ActiveDebt{}
	for rows.Next() {
		var (
			d     domain.ActiveDebt
			phone *string
			last  *time.Time
		)
		if err := rows.Scan(&d.PatientID, &d.Name, &phone, &d.Balance, &d.PaymentCount, &last); err != nil {
			return nil, fmt.Errorf("error scanning active debt: %w", err)
		}
		if phone != nil {
			d.Phone = *phone
		}
		d.LastPaymentAt = last
		d.Debt = d.Balance.Abs()
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating active debts: %w", err)
	}
	return result, nil
}

// GetDebtStats aggregates outstanding debt as positive amounts
func (r *reportingRepository) GetDebtStats(ctx context.Context, tenantID string) (domain.DebtStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(ABS(solde)), 0),
			COALESCE(ROUND(AVG(ABS(solde)), 2), 0),
			COALESCE(MAX(ABS(solde)), 0)
		FROM patients
		WHERE user_id = $1 AND solde < 0`

	var s domain.DebtStats
	if err := r.Pool.QueryRow(ctx, query, tenantID).Scan(&s.IndebtedPatients, &s.TotalDebt, &s.AverageDebt, &s.MaxDebt); err != nil {
		return domain.DebtStats{}, fmt.Errorf("error querying debt stats: %w", err)
	}
	return s, nil
}

// GetRecentPayments returns the latest payments of one mode
func (r *reportingRepository) GetRecentPayments(ctx context.Context, tenantID string, mode domain.PaymentMode, limit int) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx,
		paymentSelect+`WHERE p.user_id = $1 AND p.mode_paiement = $2`+paymentOrder+` LIMIT $3`,
		tenantID, string(mode), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying recent %s payments: %w", mode, err)
	}
	return collectPayments(rows)
}

// GetPaymentsInRange returns every payment of the range, newest first
func (r *reportingRepository) GetPaymentsInRange(ctx context.Context, tenantID string, dr portsrepo.DateRange) ([]domain.Payment, error) {
	where := newWhere("p.user_id", tenantID)
	where.addRange("p.date_paiement", dr)

	rows, err := r.Pool.Query(ctx, paymentSelect+where.sql()+paymentOrder, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying payments in range: %w", err)
	}
	return collectPayments(rows)
}
