package model

import (
	"github.com/deppfellow/biztime/internal/validation"
	"github.com/shopspring/decimal"
)

// EmptyRequest is bound by routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// CompanyCodeRequest addresses a single company by its code.
type CompanyCodeRequest struct {
	Code string `param:"code" json:"-" validate:"required,max=255"`
}

func (r *CompanyCodeRequest) Validate() error {
	return validate.Struct(r)
}

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *CreateCompanyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	if CompanyCode(r.Name) == "" {
		return validation.CustomValidationErrors{
			{Field: "name", Message: "must contain at least one letter or digit"},
		}
	}

	return nil
}

// UpdateCompanyRequest replaces a company's name and, when present, its
// description. The code never changes.
type UpdateCompanyRequest struct {
	Code        string  `param:"code" json:"-" validate:"required,max=255"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (r *UpdateCompanyRequest) Validate() error {
	return validate.Struct(r)
}

// InvoiceIDRequest addresses a single invoice by its id.
type InvoiceIDRequest struct {
	ID int `param:"id" json:"-" validate:"required,min=1,max=2147483647"`
}

func (r *InvoiceIDRequest) Validate() error {
	return validate.Struct(r)
}

type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" validate:"required,max=255"`
	Amt      *decimal.Decimal `json:"amt" validate:"required"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return validateAmount(*r.Amt)
}

// UpdateInvoiceRequest sets an invoice's amount and payment flag. A missing
// paid keeps the invoice's current flag.
type UpdateInvoiceRequest struct {
	ID   int              `param:"id" json:"-" validate:"required,min=1,max=2147483647"`
	Amt  *decimal.Decimal `json:"amt" validate:"required"`
	Paid *bool            `json:"paid"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return validateAmount(*r.Amt)
}

// maxAmount is the largest value NUMERIC(12,2) holds.
var maxAmount = decimal.RequireFromString("9999999999.99")

func validateAmount(amt decimal.Decimal) error {
	switch {
	case !amt.IsPositive():
		return validation.CustomValidationErrors{{Field: "amt", Message: "must be greater than 0"}}
	case amt.GreaterThan(maxAmount):
		return validation.CustomValidationErrors{{Field: "amt", Message: "must not exceed " + maxAmount.String()}}
	case amt.Exponent() < -2 && !amt.Equal(amt.Round(2)):
		return validation.CustomValidationErrors{{Field: "amt", Message: "must have at most 2 decimal places"}}
	}
	return nil
}
