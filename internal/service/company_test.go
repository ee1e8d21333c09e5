package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"
)

func assertNotFound(t *testing.T, err error, wantMessage string) {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Status != http.StatusNotFound || httpErr.Message != wantMessage {
		t.Errorf("got %d %q, want 404 %q", httpErr.Status, httpErr.Message, wantMessage)
	}
}

var apple = model.Company{Code: "apple", Name: "Apple", Description: "Maker of OSX."}

func TestCompanyServiceGet(t *testing.T) {
	store := &fakeCompanyStore{
		GetByCodeFunc: func(_ context.Context, code string) (*model.Company, error) {
			if code != "apple" {
				return nil, pkgerrors.Wrap(pgx.ErrNoRows, "table:companies: get")
			}
			c := apple
			return &c, nil
		},
		InvoiceIDsFunc: func(context.Context, string) ([]int, error) {
			return []int{1, 2}, nil
		},
	}
	svc := NewCompanyService(store)

	detail, err := svc.Get(context.Background(), "apple")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Company != apple || len(detail.Invoices) != 2 {
		t.Errorf("Get() = %+v", detail)
	}

	_, err = svc.Get(context.Background(), "blargh")
	assertNotFound(t, err, "Can't find company with code: blargh")
}

func TestCompanyServiceGetWithoutInvoices(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyStore{
		GetByCodeFunc: func(context.Context, string) (*model.Company, error) {
			return &model.Company{Code: "ibm", Name: "IBM"}, nil
		},
		InvoiceIDsFunc: func(context.Context, string) ([]int, error) {
			return nil, nil
		},
	})

	detail, err := svc.Get(context.Background(), "ibm")
	if err != nil {
		t.Fatal(err)
	}
	if detail.Invoices == nil {
		t.Error("Invoices should be an empty slice, not nil")
	}
}

func TestCompanyServiceCreateDerivesCode(t *testing.T) {
	var stored model.Company
	svc := NewCompanyService(&fakeCompanyStore{
		CreateFunc: func(_ context.Context, c model.Company) (*model.Company, error) {
			stored = c
			return &c, nil
		},
	})

	created, err := svc.Create(context.Background(), &model.CreateCompanyRequest{Name: "TacoTime", Description: "Tacos"})
	if err != nil {
		t.Fatal(err)
	}
	if stored.Code != "tacotime" || created.Name != "TacoTime" || created.Description != "Tacos" {
		t.Errorf("stored %+v, returned %+v", stored, created)
	}
}

func TestCompanyServiceUpdate(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyStore{
		UpdateFunc: func(_ context.Context, code, name string, description *string) (*model.Company, error) {
			if code != "apple" {
				return nil, pkgerrors.Wrap(pgx.ErrNoRows, "table:companies: update")
			}
			c := model.Company{Code: code, Name: name, Description: "Maker of OSX."}
			if description != nil {
				c.Description = *description
			}
			return &c, nil
		},
	})

	desc := "Makes phones."
	updated, err := svc.Update(context.Background(), &model.UpdateCompanyRequest{Code: "apple", Name: "Apple Inc", Description: &desc})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Apple Inc" || updated.Description != desc {
		t.Errorf("Update() = %+v", updated)
	}

	_, err = svc.Update(context.Background(), &model.UpdateCompanyRequest{Code: "blargh", Name: "Nope"})
	assertNotFound(t, err, "Can't find company with code: blargh")
}

func TestCompanyServiceDelete(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyStore{
		DeleteFunc: func(_ context.Context, code string) (bool, error) {
			return code == "apple", nil
		},
	})

	if err := svc.Delete(context.Background(), "apple"); err != nil {
		t.Errorf("Delete(apple) = %v", err)
	}
	assertNotFound(t, svc.Delete(context.Background(), "blargh"), "Can't find company with code: blargh")
}

func TestCompanyServicePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewCompanyService(&fakeCompanyStore{
		ListFunc: func(context.Context) ([]model.CompanySummary, error) {
			return nil, boom
		},
		DeleteFunc: func(context.Context, string) (bool, error) {
			return false, boom
		},
	})

	if _, err := svc.List(context.Background()); !errors.Is(err, boom) {
		t.Errorf("List() error = %v", err)
	}
	if err := svc.Delete(context.Background(), "apple"); !errors.Is(err, boom) {
		t.Errorf("Delete() error = %v", err)
	}
}
