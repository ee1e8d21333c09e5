package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
)

// CompanyStore persists companies.
type CompanyStore interface {
	List(ctx context.Context) ([]model.CompanySummary, error)
	GetByCode(ctx context.Context, code string) (*model.Company, error)
	InvoiceIDs(ctx context.Context, code string) ([]int, error)
	Create(ctx context.Context, company model.Company) (*model.Company, error)
	Update(ctx context.Context, code, name string, description *string) (*model.Company, error)
	Delete(ctx context.Context, code string) (bool, error)
}

type CompanyService struct {
	companies CompanyStore
}

func NewCompanyService(companies CompanyStore) *CompanyService {
	return &CompanyService{companies: companies}
}

func companyNotFound(code string) error {
	return errs.NewNotFoundError(fmt.Sprintf("Can't find company with code: %s", code), true, nil)
}

func (s *CompanyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.CompanySummary{}
	}
	return companies, nil
}

// Get returns the company with the ids of its invoices.
func (s *CompanyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	company, err := s.companies.GetByCode(ctx, code)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, companyNotFound(code)
	}
	if err != nil {
		return nil, err
	}

	ids, err := s.companies.InvoiceIDs(ctx, code)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int{}
	}

	return &model.CompanyDetail{Company: *company, Invoices: ids}, nil
}

// Create stores a company whose code is derived from its name.
func (s *CompanyService) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	return s.companies.Create(ctx, model.Company{
		Code:        model.CompanyCode(req.Name),
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *CompanyService) Update(ctx context.Context, req *model.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.companies.Update(ctx, req.Code, req.Name, req.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, companyNotFound(req.Code)
	}
	return company, err
}

func (s *CompanyService) Delete(ctx context.Context, code string) error {
	deleted, err := s.companies.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return companyNotFound(code)
	}
	return nil
}
