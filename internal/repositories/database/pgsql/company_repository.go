package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/biztime/internal/apperrors"
	"github.com/SscSPs/biztime/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime/internal/core/ports/repositories"
	"github.com/SscSPs/biztime/internal/models"
	"github.com/SscSPs/biztime/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool DBPool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const (
	companyNameUniqueKey   = "companies_name_key"
	selectCompanyFields    = `code, name, description, created_at`
	listCompaniesQuery     = `SELECT code, name, created_at FROM companies ORDER BY created_at, code`
	findCompanyByCodeQuery = `SELECT ` + selectCompanyFields + ` FROM companies WHERE code = $1`
	insertCompanyQuery     = `INSERT INTO companies (code, name, description) VALUES ($1, $2, $3) RETURNING ` + selectCompanyFields
	updateCompanyQuery     = `UPDATE companies SET name = $1, description = $2 WHERE code = $3 RETURNING ` + selectCompanyFields
	deleteCompanyQuery     = `DELETE FROM companies WHERE code = $1`
)

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var m models.Company
	if err := row.Scan(&m.Code, &m.Name, &m.Description, &m.CreatedAt); err != nil {
		return nil, err
	}
	d := mapping.ToDomainCompany(m)
	return &d, nil
}

// ListCompanies retrieves all companies in insertion order; description is not selected.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.query(ctx, listCompaniesQuery)
	if err != nil {
		return nil, translatePgError(err, "failed to query companies")
	}
	defer rows.Close()

	modelCompanies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		var company models.Company
		err := row.Scan(&company.Code, &company.Name, &company.CreatedAt)
		return company, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Company{}, nil
		}
		return nil, translatePgError(err, "failed to scan companies")
	}

	return mapping.ToDomainCompanySlice(modelCompanies), nil
}

// FindCompanyByCode retrieves a company by its business code.
func (r *PgxCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	company, err := scanCompany(r.queryRow(ctx, findCompanyByCodeQuery, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Can't find company with code of %s", code))
		}
		return nil, translatePgError(err, "failed to find company "+code)
	}
	return company, nil
}

// SaveCompany inserts a new company. A duplicate code or name is a conflict.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	modelComp := mapping.ToModelCompany(company)

	created, err := scanCompany(r.queryRow(ctx, insertCompanyQuery, modelComp.Code, modelComp.Name, modelComp.Description))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			switch pgErr.ConstraintName {
			case companyNameUniqueKey:
				return nil, apperrors.NewConflictError(fmt.Sprintf("company with name %s already exists", modelComp.Name))
			default:
				return nil, apperrors.NewConflictError(fmt.Sprintf("company with code %s already exists", modelComp.Code))
			}
		}
		return nil, translatePgError(err, "failed to save company "+modelComp.Code)
	}
	return created, nil
}

// UpdateCompany changes name and description; the code is never updated.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, code, name, description string) (*domain.Company, error) {
	updated, err := scanCompany(r.queryRow(ctx, updateCompanyQuery, name, description, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Cannot update company with code of %s", code))
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.NewConflictError(fmt.Sprintf("company with name %s already exists", name))
		}
		return nil, translatePgError(err, "failed to update company "+code)
	}
	return updated, nil
}

// DeleteCompany removes a company in one statement; its invoices go with it through the
// foreign key cascade. Zero affected rows is reported as not found.
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	tag, err := r.exec(ctx, deleteCompanyQuery, code)
	if err != nil {
		return translatePgError(err, "failed to delete company "+code)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("Can't find company with code of %s", code))
	}
	return nil
}
