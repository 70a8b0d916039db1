package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of the invoices table.
type Invoice struct {
	ID       int64           `db:"id"`
	CompCode string          `db:"comp_code"` // FK -> companies.code (ON DELETE CASCADE)
	Amt      decimal.Decimal `db:"amt"`
	Paid     bool            `db:"paid"`
	AddDate  time.Time       `db:"add_date"`
	PaidDate *time.Time      `db:"paid_date"` // Nullable
}

// InvoiceWithCompany is the row shape produced by joining invoices to companies.
type InvoiceWithCompany struct {
	Invoice
	CompanyName        string `db:"name"`
	CompanyDescription string `db:"description"`
}
