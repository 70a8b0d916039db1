package repositories

import (
	"context"

	"github.com/SscSPs/biztime/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByCode retrieves a specific company by its business code.
	FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error)

	// ListCompanies retrieves all companies in insertion order.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany inserts a new company and returns the stored row.
	SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error)

	// UpdateCompany replaces name and description of the company with the given code.
	UpdateCompany(ctx context.Context, code, name, description string) (*domain.Company, error)

	// DeleteCompany removes the company with the given code.
	DeleteCompany(ctx context.Context, code string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
