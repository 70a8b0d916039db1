package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/biztime/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biztime/internal/core/ports/services"
	"github.com/SscSPs/biztime/internal/dto"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service.
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: repo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, code string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByCode(ctx, code)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get company", slog.String("code", code))
		return nil, fmt.Errorf("failed to get company %s: %w", code, err)
	}
	return company, nil
}

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	created, err := s.companyRepo.SaveCompany(ctx, domain.Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create company", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.LogInfo(ctx, "Company created", slog.String("code", created.Code))
	return created, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	updated, err := s.companyRepo.UpdateCompany(ctx, code, req.Name, req.Description)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update company", slog.String("code", code))
		return nil, fmt.Errorf("failed to update company %s: %w", code, err)
	}
	return updated, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, code string) error {
	if err := s.companyRepo.DeleteCompany(ctx, code); err != nil {
		s.logFailure(ctx, err, "Failed to delete company", slog.String("code", code))
		return fmt.Errorf("failed to delete company %s: %w", code, err)
	}

	s.LogInfo(ctx, "Company deleted", slog.String("code", code))
	return nil
}
