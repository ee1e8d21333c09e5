package model

import (
	"errors"
	"testing"

	"github.com/deppfellow/biztime/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateInvoiceRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateInvoiceRequest
		wantErr bool
	}{
		{"valid", CreateInvoiceRequest{CompCode: "apple", Amt: amount("100")}, false},
		{"cents", CreateInvoiceRequest{CompCode: "apple", Amt: amount("99.99")}, false},
		{"missing amt", CreateInvoiceRequest{CompCode: "apple"}, true},
		{"missing company", CreateInvoiceRequest{Amt: amount("10")}, true},
		{"zero", CreateInvoiceRequest{CompCode: "apple", Amt: amount("0")}, true},
		{"negative", CreateInvoiceRequest{CompCode: "apple", Amt: amount("-5")}, true},
		{"fractions of a cent", CreateInvoiceRequest{CompCode: "apple", Amt: amount("1.005")}, true},
		{"too large", CreateInvoiceRequest{CompCode: "apple", Amt: amount("10000000000")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationUsesWireNames(t *testing.T) {
	err := (&CreateInvoiceRequest{Amt: amount("10")}).Validate()

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validator errors, got %T", err)
	}
	if verrs[0].Field() != "comp_code" {
		t.Errorf("Field() = %q, want comp_code", verrs[0].Field())
	}
}

func TestCreateCompanyRequestNeedsSluggableName(t *testing.T) {
	err := (&CreateCompanyRequest{Name: "???"}).Validate()

	var custom validation.CustomValidationErrors
	if !errors.As(err, &custom) || custom[0].Field != "name" {
		t.Fatalf("got %v", err)
	}

	if err := (&CreateCompanyRequest{Name: "Apple"}).Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestUpdateInvoiceRequestPaidOptional(t *testing.T) {
	req := UpdateInvoiceRequest{ID: 1, Amt: amount("10")}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	req.ID = 0
	if err := req.Validate(); err == nil {
		t.Error("id 0 should be rejected")
	}
}
