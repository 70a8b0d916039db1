package mapping

import (
	"github.com/SscSPs/biztime/internal/core/domain"
	"github.com/SscSPs/biztime/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		ID:       d.ID,
		CompCode: d.CompCode,
		Amt:      d.Amt,
		Paid:     d.Paid,
		AddDate:  d.AddDate,
		PaidDate: d.PaidDate,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:       m.ID,
		CompCode: m.CompCode,
		Amt:      m.Amt,
		Paid:     m.Paid,
		AddDate:  m.AddDate,
		PaidDate: m.PaidDate,
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToDomainInvoiceDetail nests the joined company columns under the invoice.
func ToDomainInvoiceDetail(m models.InvoiceWithCompany) domain.InvoiceDetail {
	return domain.InvoiceDetail{
		ID:       m.ID,
		Amt:      m.Amt,
		Paid:     m.Paid,
		AddDate:  m.AddDate,
		PaidDate: m.PaidDate,
		Company: domain.CompanySummary{
			Code:        m.CompCode,
			Name:        m.CompanyName,
			Description: m.CompanyDescription,
		},
	}
}
