package handler

import (
	"context"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/labstack/echo/v4"
)

// CompanyService is the business layer behind /companies.
type CompanyService interface {
	List(ctx context.Context) ([]model.CompanySummary, error)
	Get(ctx context.Context, code string) (*model.CompanyDetail, error)
	Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error)
	Update(ctx context.Context, req *model.UpdateCompanyRequest) (*model.Company, error)
	Delete(ctx context.Context, code string) error
}

type CompanyHandler struct {
	Handler
	companies CompanyService
}

func NewCompanyHandler(s *server.Server, companies CompanyService) *CompanyHandler {
	return &CompanyHandler{
		Handler:   NewHandler(s),
		companies: companies,
	}
}

func (h *CompanyHandler) ListCompanies(c echo.Context, _ *model.EmptyRequest) (*model.CompaniesResponse, error) {
	companies, err := h.companies.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &model.CompaniesResponse{Companies: companies}, nil
}

func (h *CompanyHandler) GetCompany(c echo.Context, req *model.CompanyCodeRequest) (*model.CompanyDetailResponse, error) {
	company, err := h.companies.Get(c.Request().Context(), req.Code)
	if err != nil {
		return nil, err
	}
	return &model.CompanyDetailResponse{Company: *company}, nil
}

func (h *CompanyHandler) CreateCompany(c echo.Context, req *model.CreateCompanyRequest) (*model.CompanyResponse, error) {
	company, err := h.companies.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/companies/"+company.Code)

	return &model.CompanyResponse{Company: *company}, nil
}

func (h *CompanyHandler) UpdateCompany(c echo.Context, req *model.UpdateCompanyRequest) (*model.CompanyResponse, error) {
	company, err := h.companies.Update(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.CompanyResponse{Company: *company}, nil
}

func (h *CompanyHandler) DeleteCompany(c echo.Context, req *model.CompanyCodeRequest) (*model.StatusResponse, error) {
	if err := h.companies.Delete(c.Request().Context(), req.Code); err != nil {
		return nil, err
	}
	return &model.Deleted, nil
}
