package services

import (
	"context"

	"github.com/SscSPs/biztime/internal/core/domain"
	"github.com/SscSPs/biztime/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// ListInvoices retrieves every invoice ordered by id.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// GetInvoiceDetail retrieves an invoice together with its company.
	GetInvoiceDetail(ctx context.Context, id int64) (*domain.InvoiceDetail, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice sets the amount and applies the payment transition.
	UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
