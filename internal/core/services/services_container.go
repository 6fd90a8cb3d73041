package services

import (
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/anapath_backend/internal/core/ports/services"
	"github.com/SscSPs/anapath_backend/internal/platform/config"
	"github.com/SscSPs/anapath_backend/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Payments issue receipts inside their own transaction, so the receipt service comes first
	container.Receipt = NewReceiptService(repos.ReceiptRepo, WithReceiptLocation(cfg.Location))

	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		repos.PatientRepo,
		container.Receipt,
		WithBalanceRules(accounting.BalanceRules{CashCreditsBalance: cfg.CashCreditsBalance}),
		WithBalanceReconciler(NewBalanceReconciler(cfg.DeleteStrategy, repos.PaymentRepo)),
		WithPaymentLocation(cfg.Location),
		WithDefaultPageSize(cfg.DefaultPageSize),
	)

	container.Patient = NewPatientService(repos.PatientRepo, repos.PaymentRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, WithReportingLocation(cfg.Location))

	return container
}
