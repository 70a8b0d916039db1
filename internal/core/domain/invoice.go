package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxInvoiceAmount is the largest amount the invoices.amt column holds (NUMERIC(12,2)).
var MaxInvoiceAmount = decimal.RequireFromString("9999999999.99")

// Invoice is a single amount owed by a company.
type Invoice struct {
	ID       int64           `json:"id"`        // Primary Key, generated by the store
	CompCode string          `json:"comp_code"` // FK -> companies.code, immutable
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`  // Assigned by the store at creation
	PaidDate *time.Time      `json:"paid_date"` // Non-nil iff Paid
}

// IsConsistent reports whether the paid flag and paid date agree.
func (i Invoice) IsConsistent() bool {
	return i.Paid == (i.PaidDate != nil)
}

// InvoiceDetail is an invoice joined with its owning company.
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanySummary  `json:"company"`
}
