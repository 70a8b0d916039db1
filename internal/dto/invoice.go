package dto

import (
	"time"

	"github.com/SscSPs/biztime/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayout is how add_date is rendered.
const dateLayout = "2006-01-02"

// CreateInvoiceRequest defines the data needed to create a new invoice.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" binding:"required,max=32"`
	Amt      *decimal.Decimal `json:"amt" binding:"required,decimal_gt0,decimal_lte=9999999999.99" swaggertype:"number"`
}

// UpdateInvoiceRequest carries the new amount and the requested payment state.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" binding:"required,decimal_gt0,decimal_lte=9999999999.99" swaggertype:"number"`
	Paid *bool            `json:"paid" binding:"required"`
}

// InvoiceResponse is the flat invoice record.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"number"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date" example:"2026-10-19"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceDetailResponse is an invoice with its owning company embedded.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"number"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date" example:"2026-10-19"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// ListInvoicesResponse wraps GET /invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// InvoiceEnvelope wraps a single flat invoice.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope wraps a single invoice detail.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: inv.PaidDate,
	}
}

// ToListInvoicesResponse converts a slice of invoices, keeping their order.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return ListInvoicesResponse{Invoices: res}
}

// ToInvoiceDetailResponse converts a domain.InvoiceDetail to its response DTO
func ToInvoiceDetailResponse(d *domain.InvoiceDetail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       d.ID,
		Amt:      d.Amt,
		Paid:     d.Paid,
		AddDate:  d.AddDate.Format(dateLayout),
		PaidDate: d.PaidDate,
		Company: CompanyResponse{
			Code:        d.Company.Code,
			Name:        d.Company.Name,
			Description: d.Company.Description,
		},
	}
}
