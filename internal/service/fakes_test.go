package service

import (
	"context"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/shopspring/decimal"
)

type fakeCompanyStore struct {
	ListFunc       func(ctx context.Context) ([]model.CompanySummary, error)
	GetByCodeFunc  func(ctx context.Context, code string) (*model.Company, error)
	InvoiceIDsFunc func(ctx context.Context, code string) ([]int, error)
	CreateFunc     func(ctx context.Context, company model.Company) (*model.Company, error)
	UpdateFunc     func(ctx context.Context, code, name string, description *string) (*model.Company, error)
	DeleteFunc     func(ctx context.Context, code string) (bool, error)
}

func (f *fakeCompanyStore) List(ctx context.Context) ([]model.CompanySummary, error) {
	return f.ListFunc(ctx)
}

func (f *fakeCompanyStore) GetByCode(ctx context.Context, code string) (*model.Company, error) {
	return f.GetByCodeFunc(ctx, code)
}

func (f *fakeCompanyStore) InvoiceIDs(ctx context.Context, code string) ([]int, error) {
	return f.InvoiceIDsFunc(ctx, code)
}

func (f *fakeCompanyStore) Create(ctx context.Context, company model.Company) (*model.Company, error) {
	return f.CreateFunc(ctx, company)
}

func (f *fakeCompanyStore) Update(ctx context.Context, code, name string, description *string) (*model.Company, error) {
	return f.UpdateFunc(ctx, code, name, description)
}

func (f *fakeCompanyStore) Delete(ctx context.Context, code string) (bool, error) {
	return f.DeleteFunc(ctx, code)
}

type fakeInvoiceStore struct {
	ListFunc          func(ctx context.Context) ([]model.InvoiceSummary, error)
	GetByIDFunc       func(ctx context.Context, id int) (*model.Invoice, error)
	ListByCompanyFunc func(ctx context.Context, code string) ([]model.Invoice, error)
	CreateFunc        func(ctx context.Context, compCode string, amt decimal.Decimal) (*model.Invoice, error)
	UpdatePaymentFunc func(ctx context.Context, id int, apply func(model.Invoice) model.PaymentUpdate) (*model.Invoice, model.PaymentUpdate, error)
	DeleteFunc        func(ctx context.Context, id int) (bool, error)
}

func (f *fakeInvoiceStore) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	return f.ListFunc(ctx)
}

func (f *fakeInvoiceStore) GetByID(ctx context.Context, id int) (*model.Invoice, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeInvoiceStore) ListByCompany(ctx context.Context, code string) ([]model.Invoice, error) {
	return f.ListByCompanyFunc(ctx, code)
}

func (f *fakeInvoiceStore) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*model.Invoice, error) {
	return f.CreateFunc(ctx, compCode, amt)
}

func (f *fakeInvoiceStore) UpdatePayment(ctx context.Context, id int, apply func(model.Invoice) model.PaymentUpdate) (*model.Invoice, model.PaymentUpdate, error) {
	return f.UpdatePaymentFunc(ctx, id, apply)
}

func (f *fakeInvoiceStore) Delete(ctx context.Context, id int) (bool, error) {
	return f.DeleteFunc(ctx, id)
}

// updateInPlace mimics the repository: apply runs against stored and the
// result is written back.
func updateInPlace(stored *model.Invoice) func(context.Context, int, func(model.Invoice) model.PaymentUpdate) (*model.Invoice, model.PaymentUpdate, error) {
	return func(_ context.Context, _ int, apply func(model.Invoice) model.PaymentUpdate) (*model.Invoice, model.PaymentUpdate, error) {
		change := apply(*stored)
		stored.Amt, stored.Paid, stored.PaidDate = change.Amt, change.Paid, change.PaidDate
		updated := *stored
		return &updated, change, nil
	}
}

type fakeNotifier struct {
	EnqueueInvoicePaidFunc func(ctx context.Context, inv model.Invoice) error
}

func (f *fakeNotifier) EnqueueInvoicePaid(ctx context.Context, inv model.Invoice) error {
	return f.EnqueueInvoicePaidFunc(ctx, inv)
}
