package services

import (
	"context"

	"github.com/SscSPs/biztime/internal/core/domain"
	"github.com/SscSPs/biztime/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// ListCompanies retrieves every company in insertion order.
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// GetCompany retrieves a company by its code.
	GetCompany(ctx context.Context, code string) (*domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// UpdateCompany replaces name and description of an existing company.
	UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// DeleteCompany removes a company along with its invoices.
	DeleteCompany(ctx context.Context, code string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
