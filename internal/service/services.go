// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"time"

	"github.com/deppfellow/biztime/internal/lib/job"
	"github.com/deppfellow/biztime/internal/repository"
	"github.com/deppfellow/biztime/internal/server"
)

type Services struct {
	Auth    *AuthService
	Company *CompanyService
	Invoice *InvoiceService
	Job     *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var notifier InvoicePaidNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Auth:    NewAuthService(s),
		Company: NewCompanyService(repos.Company),
		Invoice: NewInvoiceService(repos.Invoice, repos.Company, notifier, time.Now, s.Logger),
		Job:     s.Job,
	}
}
