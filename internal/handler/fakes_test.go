package handler

import (
	"context"

	"github.com/deppfellow/biztime/internal/model"
)

type fakeCompanyService struct {
	ListFunc   func(ctx context.Context) ([]model.CompanySummary, error)
	GetFunc    func(ctx context.Context, code string) (*model.CompanyDetail, error)
	CreateFunc func(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error)
	UpdateFunc func(ctx context.Context, req *model.UpdateCompanyRequest) (*model.Company, error)
	DeleteFunc func(ctx context.Context, code string) error
}

func (f *fakeCompanyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	return f.ListFunc(ctx)
}

func (f *fakeCompanyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	return f.GetFunc(ctx, code)
}

func (f *fakeCompanyService) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	return f.CreateFunc(ctx, req)
}

func (f *fakeCompanyService) Update(ctx context.Context, req *model.UpdateCompanyRequest) (*model.Company, error) {
	return f.UpdateFunc(ctx, req)
}

func (f *fakeCompanyService) Delete(ctx context.Context, code string) error {
	return f.DeleteFunc(ctx, code)
}

type fakeInvoiceService struct {
	ListFunc          func(ctx context.Context) ([]model.InvoiceSummary, error)
	GetFunc           func(ctx context.Context, id int) (*model.InvoiceDetail, error)
	ListByCompanyFunc func(ctx context.Context, code string) ([]model.Invoice, error)
	CreateFunc        func(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error)
	UpdateFunc        func(ctx context.Context, req *model.UpdateInvoiceRequest) (*model.Invoice, error)
	DeleteFunc        func(ctx context.Context, id int) error
}

func (f *fakeInvoiceService) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	return f.ListFunc(ctx)
}

func (f *fakeInvoiceService) Get(ctx context.Context, id int) (*model.InvoiceDetail, error) {
	return f.GetFunc(ctx, id)
}

func (f *fakeInvoiceService) ListByCompany(ctx context.Context, code string) ([]model.Invoice, error) {
	return f.ListByCompanyFunc(ctx, code)
}

func (f *fakeInvoiceService) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	return f.CreateFunc(ctx, req)
}

func (f *fakeInvoiceService) Update(ctx context.Context, req *model.UpdateInvoiceRequest) (*model.Invoice, error) {
	return f.UpdateFunc(ctx, req)
}

func (f *fakeInvoiceService) Delete(ctx context.Context, id int) error {
	return f.DeleteFunc(ctx, id)
}
