package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/biztime/internal/apperrors"
	"github.com/SscSPs/biztime/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime/internal/core/ports/repositories"
	"github.com/SscSPs/biztime/internal/models"
	"github.com/SscSPs/biztime/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool DBPool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

const (
	selectInvoiceFields = `id, comp_code, amt, paid, add_date, paid_date`

	listInvoicesQuery = `SELECT ` + selectInvoiceFields + ` FROM invoices ORDER BY id`

	findInvoiceDetailQuery = `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date, c.name, c.description
		FROM invoices AS i
		INNER JOIN companies AS c ON i.comp_code = c.code
		WHERE i.id = $1`

	insertInvoiceQuery = `INSERT INTO invoices (comp_code, amt) VALUES ($1, $2) RETURNING ` + selectInvoiceFields

	findPaidDateForUpdateQuery = `SELECT paid_date FROM invoices WHERE id = $1 FOR UPDATE`

	updateInvoiceQuery = `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING ` + selectInvoiceFields

	deleteInvoiceQuery = `DELETE FROM invoices WHERE id = $1`
)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(&m.ID, &m.CompCode, &m.Amt, &m.Paid, &m.AddDate, &m.PaidDate)
	return m, err
}

func invoiceNotFound(id int64) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("No such invoice: %d", id))
}

// ListInvoices retrieves all invoices ordered by id.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := r.query(ctx, listInvoicesQuery)
	if err != nil {
		return nil, translatePgError(err, "failed to query invoices")
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Invoice{}, nil
		}
		return nil, translatePgError(err, "failed to scan invoices")
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

// FindInvoiceDetailByID reads one invoice joined with its company. An invoice whose
// company row is missing reads as not found.
func (r *PgxInvoiceRepository) FindInvoiceDetailByID(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	var m models.InvoiceWithCompany
	err := r.queryRow(ctx, findInvoiceDetailQuery, id).Scan(
		&m.ID,
		&m.CompCode,
		&m.Amt,
		&m.Paid,
		&m.AddDate,
		&m.PaidDate,
		&m.CompanyName,
		&m.CompanyDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoiceNotFound(id)
		}
		return nil, translatePgError(err, fmt.Sprintf("failed to find invoice %d", id))
	}

	detail := mapping.ToDomainInvoiceDetail(m)
	return &detail, nil
}

// SaveInvoice inserts an invoice; the store assigns id, paid=false, add_date and a null
// paid_date. An unknown company code is a referential integrity violation.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, compCode string, amt decimal.Decimal) (*domain.Invoice, error) {
	m, err := scanInvoice(r.queryRow(ctx, insertInvoiceQuery, compCode, amt))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, apperrors.NewReferentialIntegrityError(fmt.Sprintf("company with code %s does not exist", compCode))
		}
		return nil, translatePgError(err, "failed to save invoice for company "+compCode)
	}

	created := mapping.ToDomainInvoice(m)
	return &created, nil
}

// FindPaidDateForUpdate reads the stored paid date and, inside a transaction, holds a
// row lock on the invoice until commit.
func (r *PgxInvoiceRepository) FindPaidDateForUpdate(ctx context.Context, id int64) (*time.Time, error) {
	var paidDate *time.Time
	if err := r.queryRow(ctx, findPaidDateForUpdateQuery, id).Scan(&paidDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoiceNotFound(id)
		}
		return nil, translatePgError(err, fmt.Sprintf("failed to read invoice %d", id))
	}
	return paidDate, nil
}

// UpdateInvoice writes amt, paid and paid_date in a single statement.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	modelInv := mapping.ToModelInvoice(invoice)

	m, err := scanInvoice(r.queryRow(ctx, updateInvoiceQuery, modelInv.Amt, modelInv.Paid, modelInv.PaidDate, modelInv.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoiceNotFound(modelInv.ID)
		}
		return nil, translatePgError(err, fmt.Sprintf("failed to update invoice %d", modelInv.ID))
	}

	updated := mapping.ToDomainInvoice(m)
	return &updated, nil
}

// DeleteInvoice removes an invoice in one statement. Zero affected rows is reported as
// not found.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	tag, err := r.exec(ctx, deleteInvoiceQuery, id)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete invoice %d", id))
	}
	if tag.RowsAffected() == 0 {
		return invoiceNotFound(id)
	}
	return nil
}
