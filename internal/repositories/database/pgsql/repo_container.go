package pgsql

import (
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PatientRepo:   newPgxPatientRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ReceiptRepo:   newPgxReceiptCounterRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
