package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/biztime/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// ListInvoices retrieves all invoices without company data.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// FindInvoiceDetailByID retrieves an invoice joined with its company.
	FindInvoiceDetailByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice inserts an unpaid invoice for the company and returns the stored row.
	SaveInvoice(ctx context.Context, compCode string, amt decimal.Decimal) (*domain.Invoice, error)

	// FindPaidDateForUpdate reads the current paid date of an invoice and locks the row
	// when called inside a transaction.
	FindPaidDateForUpdate(ctx context.Context, id int64) (*time.Time, error)

	// UpdateInvoice writes amt, paid and paid_date of the invoice in one statement.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// DeleteInvoice removes the invoice with the given id.
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
