package handler

import (
	"context"
	"strconv"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/labstack/echo/v4"
)

// InvoiceService is the business layer behind /invoices.
type InvoiceService interface {
	List(ctx context.Context) ([]model.InvoiceSummary, error)
	Get(ctx context.Context, id int) (*model.InvoiceDetail, error)
	ListByCompany(ctx context.Context, code string) ([]model.Invoice, error)
	Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error)
	Update(ctx context.Context, req *model.UpdateInvoiceRequest) (*model.Invoice, error)
	Delete(ctx context.Context, id int) error
}

type InvoiceHandler struct {
	Handler
	invoices InvoiceService
}

func NewInvoiceHandler(s *server.Server, invoices InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		Handler:  NewHandler(s),
		invoices: invoices,
	}
}

func (h *InvoiceHandler) ListInvoices(c echo.Context, _ *model.EmptyRequest) (*model.InvoicesResponse, error) {
	invoices, err := h.invoices.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &model.InvoicesResponse{Invoices: invoices}, nil
}

func (h *InvoiceHandler) GetInvoice(c echo.Context, req *model.InvoiceIDRequest) (*model.InvoiceDetailResponse, error) {
	invoice, err := h.invoices.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &model.InvoiceDetailResponse{Invoice: *invoice}, nil
}

func (h *InvoiceHandler) ListCompanyInvoices(c echo.Context, req *model.CompanyCodeRequest) (*model.CompanyInvoicesResponse, error) {
	invoices, err := h.invoices.ListByCompany(c.Request().Context(), req.Code)
	if err != nil {
		return nil, err
	}
	return &model.CompanyInvoicesResponse{Company: invoices}, nil
}

func (h *InvoiceHandler) CreateInvoice(c echo.Context, req *model.CreateInvoiceRequest) (*model.InvoiceResponse, error) {
	invoice, err := h.invoices.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/invoices/"+strconv.Itoa(invoice.ID))

	return &model.InvoiceResponse{Invoice: *invoice}, nil
}

func (h *InvoiceHandler) UpdateInvoice(c echo.Context, req *model.UpdateInvoiceRequest) (*model.InvoiceResponse, error) {
	invoice, err := h.invoices.Update(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.InvoiceResponse{Invoice: *invoice}, nil
}

func (h *InvoiceHandler) DeleteInvoice(c echo.Context, req *model.InvoiceIDRequest) (*model.StatusResponse, error) {
	if err := h.invoices.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &model.Deleted, nil
}
