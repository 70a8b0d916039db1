package dto

import "github.com/SscSPs/biztime/internal/core/domain"

// CreateCompanyRequest defines the data needed to create a new company.
type CreateCompanyRequest struct {
	Code        string `json:"code" binding:"required,max=32,company_code"`
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// UpdateCompanyRequest replaces the mutable fields of a company. The code is
// taken from the path and never changes.
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// CompanySummaryResponse is the list projection of a company.
type CompanySummaryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse is the full company record.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListCompaniesResponse wraps GET /companies.
type ListCompaniesResponse struct {
	Companies []CompanySummaryResponse `json:"companies"`
}

// CompanyEnvelope wraps a single company.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToListCompaniesResponse projects companies down to code and name.
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	res := make([]CompanySummaryResponse, len(companies))
	for i, c := range companies {
		res[i] = CompanySummaryResponse{Code: c.Code, Name: c.Name}
	}
	return ListCompaniesResponse{Companies: res}
}
