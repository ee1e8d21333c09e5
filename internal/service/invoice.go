package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// InvoiceStore persists invoices.
type InvoiceStore interface {
	List(ctx context.Context) ([]model.InvoiceSummary, error)
	GetByID(ctx context.Context, id int) (*model.Invoice, error)
	ListByCompany(ctx context.Context, code string) ([]model.Invoice, error)
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*model.Invoice, error)
	UpdatePayment(ctx context.Context, id int, apply func(current model.Invoice) model.PaymentUpdate) (*model.Invoice, model.PaymentUpdate, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// InvoicePaidNotifier is told about invoices that just became paid.
type InvoicePaidNotifier interface {
	EnqueueInvoicePaid(ctx context.Context, inv model.Invoice) error
}

type InvoiceService struct {
	invoices  InvoiceStore
	companies CompanyStore
	notifier  InvoicePaidNotifier
	now       model.Clock
	logger    *zerolog.Logger
}

// NewInvoiceService builds the service. notifier may be nil, in which case
// no paid notifications are sent.
func NewInvoiceService(
	invoices InvoiceStore,
	companies CompanyStore,
	notifier InvoicePaidNotifier,
	clock model.Clock,
	logger *zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoices:  invoices,
		companies: companies,
		notifier:  notifier,
		now:       clock,
		logger:    logger,
	}
}

func invoiceNotFound(id int) error {
	return errs.NewNotFoundError(fmt.Sprintf("Can't find invoice with id: %d", id), true, nil)
}

func (s *InvoiceService) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []model.InvoiceSummary{}
	}
	return invoices, nil
}

// Get returns the invoice with its company in place of the company code.
func (s *InvoiceService) Get(ctx context.Context, id int) (*model.InvoiceDetail, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, invoiceNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	company, err := s.companies.GetByCode(ctx, invoice.CompCode)
	if err != nil {
		// The invoice row was deleted along with its company in between.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoiceNotFound(id)
		}
		return nil, err
	}

	detail := model.NewInvoiceDetail(*invoice, *company)
	return &detail, nil
}

// ListByCompany returns the company's invoices; an unknown company simply
// has none.
func (s *InvoiceService) ListByCompany(ctx context.Context, code string) ([]model.Invoice, error) {
	invoices, err := s.invoices.ListByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []model.Invoice{}
	}
	return invoices, nil
}

func (s *InvoiceService) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	return s.invoices.Create(ctx, req.CompCode, *req.Amt)
}

// Update sets the invoice amount and paid flag, stamping or clearing
// paid_date as the flag changes. A nil req.Paid keeps the current flag.
func (s *InvoiceService) Update(ctx context.Context, req *model.UpdateInvoiceRequest) (*model.Invoice, error) {
	invoice, change, err := s.invoices.UpdatePayment(ctx, req.ID, func(current model.Invoice) model.PaymentUpdate {
		paid := current.Paid
		if req.Paid != nil {
			paid = *req.Paid
		}
		return model.ApplyPayment(current, *req.Amt, paid, s.now())
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, invoiceNotFound(req.ID)
	}
	if err != nil {
		return nil, err
	}

	if change.BecamePaid && s.notifier != nil {
		if err := s.notifier.EnqueueInvoicePaid(ctx, *invoice); err != nil {
			s.logger.Error().Err(err).Int("invoice_id", invoice.ID).Msg("failed to enqueue invoice paid notification")
		}
	}

	return invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int) error {
	deleted, err := s.invoices.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return invoiceNotFound(id)
	}
	return nil
}
