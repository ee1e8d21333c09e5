// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the service layer and shapes the JSON responses.
package handler

import (
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Company *CompanyHandler
	Invoice *InvoiceHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Company: NewCompanyHandler(s, services.Company),
		Invoice: NewInvoiceHandler(s, services.Invoice),
	}
}
