package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/biztime/internal/apperrors"
	"github.com/SscSPs/biztime/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biztime/internal/core/ports/services"
	"github.com/SscSPs/biztime/internal/dto"
	"github.com/shopspring/decimal"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryWithTx
	clock       domain.Clock
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithClock sets the clock used to stamp paid dates.
func WithClock(clock domain.Clock) InvoiceServiceOption {
	return func(s *invoiceService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repo portsrepo.InvoiceRepositoryWithTx, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: repo,
		clock:       domain.SystemClock{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoiceDetail(ctx context.Context, id int64) (*domain.InvoiceDetail, error) {
	detail, err := s.invoiceRepo.FindInvoiceDetailByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get invoice", slog.Int64("invoice_id", id))
		return nil, fmt.Errorf("failed to get invoice %d: %w", id, err)
	}
	return detail, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := validateAmount(req.Amt); err != nil {
		return nil, err
	}

	created, err := s.invoiceRepo.SaveInvoice(ctx, req.CompCode, *req.Amt)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create invoice", slog.String("comp_code", req.CompCode))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.Int64("invoice_id", created.ID),
		slog.String("comp_code", created.CompCode))
	return created, nil
}

// UpdateInvoice reads the current paid date under a row lock, resolves the new
// one and writes amt, paid and paid_date in the same transaction.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	if err := validateAmount(req.Amt); err != nil {
		return nil, err
	}
	if req.Paid == nil {
		return nil, apperrors.NewValidationFailedError("paid is required")
	}

	var updated *domain.Invoice
	err := s.invoiceRepo.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := s.invoiceRepo.FindPaidDateForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		paidDate := domain.ResolvePaidDate(current, *req.Paid, s.clock.Now())
		updated, err = s.invoiceRepo.UpdateInvoice(txCtx, domain.Invoice{
			ID:       id,
			Amt:      *req.Amt,
			Paid:     *req.Paid,
			PaidDate: paidDate,
		})
		if err != nil {
			return err
		}
		if !updated.IsConsistent() {
			return apperrors.NewAppError(http.StatusInternalServerError, "invoice paid state is inconsistent after update", nil)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update invoice", slog.Int64("invoice_id", id))
		return nil, fmt.Errorf("failed to update invoice %d: %w", id, err)
	}

	s.LogDebug(ctx, "Invoice updated",
		slog.Int64("invoice_id", id),
		slog.Bool("paid", updated.Paid),
		slog.String("paid_date", formatPaidDate(updated.PaidDate)))
	return updated, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, id); err != nil {
		s.logFailure(ctx, err, "Failed to delete invoice", slog.Int64("invoice_id", id))
		return fmt.Errorf("failed to delete invoice %d: %w", id, err)
	}

	s.LogInfo(ctx, "Invoice deleted", slog.Int64("invoice_id", id))
	return nil
}

func validateAmount(amt *decimal.Decimal) error {
	if amt == nil || !amt.IsPositive() {
		return apperrors.NewValidationFailedError("amt must be greater than 0")
	}
	if amt.GreaterThan(domain.MaxInvoiceAmount) {
		return apperrors.NewValidationFailedError("amt must be at most " + domain.MaxInvoiceAmount.String())
	}
	return nil
}

func formatPaidDate(t *time.Time) string {
	if t == nil {
		return "null"
	}
	return t.Format(time.RFC3339)
}
