package pgsql

import (
	portsrepo "github.com/SscSPs/biztime/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the same store handle.
func NewRepositoryProvider(dbPool DBPool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo: companyRepo,
		InvoiceRepo: invoiceRepo,
	}
}
