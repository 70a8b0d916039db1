package services

import (
	"github.com/SscSPs/biztime/internal/core/domain"
	portsrepo "github.com/SscSPs/biztime/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biztime/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock domain.Clock) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company: NewCompanyService(repos.CompanyRepo),
		Invoice: NewInvoiceService(repos.InvoiceRepo, WithClock(clock)),
	}
}
