package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/biztime/internal/apperrors"
	"github.com/SscSPs/biztime/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invoiceColumns = []string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}

func newInvoiceRepoWithMock(t *testing.T) (*PgxInvoiceRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return newPgxInvoiceRepository(mock).(*PgxInvoiceRepository), mock
}

func TestInvoiceRepository_ListInvoices(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	paidAt := today.Add(10 * time.Hour)

	rows := pgxmock.NewRows(invoiceColumns).
		AddRow(int64(1), "apple", decimal.NewFromInt(100), false, today, nil).
		AddRow(int64(2), "ibm", decimal.NewFromInt(400), true, today, &paidAt)
	mock.ExpectQuery(regexp.QuoteMeta(listInvoicesQuery)).WillReturnRows(rows)

	invoices, err := repo.ListInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Nil(t, invoices[0].PaidDate)
	assert.False(t, invoices[0].Paid)
	require.NotNil(t, invoices[1].PaidDate)
	assert.True(t, paidAt.Equal(*invoices[1].PaidDate))
	assert.True(t, decimal.NewFromInt(400).Equal(invoices[1].Amt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_SaveInvoice(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	amt := decimal.NewFromInt(100)

	mock.ExpectQuery(regexp.QuoteMeta(insertInvoiceQuery)).
		WithArgs("apple", amt).
		WillReturnRows(pgxmock.NewRows(invoiceColumns).AddRow(int64(1), "apple", amt, false, today, nil))

	created, err := repo.SaveInvoice(context.Background(), "apple", amt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "apple", created.CompCode)
	assert.False(t, created.Paid)
	assert.Nil(t, created.PaidDate)
	assert.False(t, created.AddDate.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_SaveInvoice_UnknownCompany(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	amt := decimal.NewFromInt(100)

	mock.ExpectQuery(regexp.QuoteMeta(insertInvoiceQuery)).
		WithArgs("ghost", amt).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "invoices_comp_code_fkey"})

	created, err := repo.SaveInvoice(context.Background(), "ghost", amt)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperrors.ErrForeignKey)
	assert.Contains(t, err.Error(), "ghost")
}

func TestInvoiceRepository_SaveInvoice_CheckViolation(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	amt := decimal.NewFromInt(-5)

	mock.ExpectQuery(regexp.QuoteMeta(insertInvoiceQuery)).
		WithArgs("apple", amt).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation, ConstraintName: "invoices_amt_check"})

	_, err := repo.SaveInvoice(context.Background(), "apple", amt)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestInvoiceRepository_SaveInvoice_AmountOutOfRange(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	amt := decimal.NewFromInt(10000000000)

	mock.ExpectQuery(regexp.QuoteMeta(insertInvoiceQuery)).
		WithArgs("apple", amt).
		WillReturnError(&pgconn.PgError{Code: "22003", Message: "numeric field overflow"})

	created, err := repo.SaveInvoice(context.Background(), "apple", amt)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	appErr := apperrors.From(err)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "numeric field overflow")
}

func TestInvoiceRepository_FindInvoiceDetailByID(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(findInvoiceDetailQuery)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date", "name", "description"}).
			AddRow(int64(1), "apple", decimal.NewFromInt(100), false, today, nil, "Apple", "maker of tech"))

	detail, err := repo.FindInvoiceDetailByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.ID)
	assert.Equal(t, domain.CompanySummary{Code: "apple", Name: "Apple", Description: "maker of tech"}, detail.Company)
	assert.Nil(t, detail.PaidDate)
}

func TestInvoiceRepository_FindInvoiceDetailByID_NotFound(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(findInvoiceDetailQuery)).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date", "name", "description"}))

	detail, err := repo.FindInvoiceDetailByID(context.Background(), 99)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "No such invoice: 99")
}

func TestInvoiceRepository_FindPaidDateForUpdate(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	paidAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(findPaidDateForUpdateQuery)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"paid_date"}).AddRow(&paidAt))
	mock.ExpectQuery(regexp.QuoteMeta(findPaidDateForUpdateQuery)).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"paid_date"}).AddRow(nil))

	got, err := repo.FindPaidDateForUpdate(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, paidAt.Equal(*got))

	got, err = repo.FindPaidDateForUpdate(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_FindPaidDateForUpdate_NotFound(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(findPaidDateForUpdateQuery)).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"paid_date"}))

	_, err := repo.FindPaidDateForUpdate(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInvoiceRepository_UpdateInvoice(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	paidAt := today.Add(9 * time.Hour)
	amt := decimal.NewFromInt(200)

	mock.ExpectQuery(regexp.QuoteMeta(updateInvoiceQuery)).
		WithArgs(amt, true, &paidAt, int64(1)).
		WillReturnRows(pgxmock.NewRows(invoiceColumns).AddRow(int64(1), "apple", amt, true, today, &paidAt))

	updated, err := repo.UpdateInvoice(context.Background(), domain.Invoice{ID: 1, Amt: amt, Paid: true, PaidDate: &paidAt})
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	assert.True(t, updated.IsConsistent())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_DeleteInvoice(t *testing.T) {
	repo, mock := newInvoiceRepoWithMock(t)
	mock.ExpectExec(regexp.QuoteMeta(deleteInvoiceQuery)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteInvoiceQuery)).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteInvoice(context.Background(), 1))
	assert.ErrorIs(t, repo.DeleteInvoice(context.Background(), 2), apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
