package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/biztime/internal/apperrors"
	portssvc "github.com/SscSPs/biztime/internal/core/ports/services"
	"github.com/SscSPs/biztime/internal/dto"
	"github.com/SscSPs/biztime/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.PATCH("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// invoiceID parses the :id path parameter.
func invoiceID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationFailedError("invalid invoice id: " + raw)
	}
	return id, nil
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce  json
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Retrieves an invoice together with its company
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceDetailEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := invoiceID(c)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	logger = logger.With(slog.Int64("invoice_id", id))

	detail, err := h.invoiceService.GetInvoiceDetail(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceDetailEnvelope{Invoice: dto.ToInvoiceDetailResponse(detail)})
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates an unpaid invoice for an existing company
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Company does not exist"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Sets the amount and payment state. Paying stamps paid_date once; unpaying clears it.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Param   invoice body dto.UpdateInvoiceRequest true "New amount and payment state"
// @Success 200 {object} dto.InvoiceEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := invoiceID(c)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	logger = logger.With(slog.Int64("invoice_id", id))

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := invoiceID(c)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondWithError(c, logger.With(slog.Int64("invoice_id", id)), err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{Msg: dto.DeletedMessage})
}
