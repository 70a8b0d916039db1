package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/biztime/internal/core/ports/services"
	"github.com/SscSPs/biztime/internal/dto"
	"github.com/SscSPs/biztime/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers routes related to companies.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.POST("", h.createCompany)
		companies.GET("/:code", h.getCompany)
		companies.PUT("/:code", h.updateCompany)
		companies.PATCH("/:code", h.updateCompany)
		companies.DELETE("/:code", h.deleteCompany)
	}
}

// listCompanies godoc
// @Summary List companies
// @Description Returns every company as code and name, in insertion order
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompany godoc
// @Summary Get a company
// @Description Retrieves a company by its code
// @Tags companies
// @Produce  json
// @Param   code path string true "Company code"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{code} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("code", code))

	company, err := h.companyService.GetCompany(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// createCompany godoc
// @Summary Create a company
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Company code or name already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// updateCompany godoc
// @Summary Update a company
// @Description Replaces name and description. The code cannot change.
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   code path string true "Company code"
// @Param   company body dto.UpdateCompanyRequest true "New values"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 409 {object} dto.ErrorResponse "Company name already exists"
// @Router /companies/{code} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("code", code))

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), code, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Deletes a company and all of its invoices
// @Tags companies
// @Produce  json
// @Param   code path string true "Company code"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{code} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	code := c.Param("code")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("code", code))

	if err := h.companyService.DeleteCompany(c.Request.Context(), code); err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{Msg: dto.DeletedMessage})
}
