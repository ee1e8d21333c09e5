package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	ID       int             `json:"id" db:"id"`
	CompCode string          `json:"comp_code" db:"comp_code"`
	Amt      decimal.Decimal `json:"amt" db:"amt"`
	Paid     bool            `json:"paid" db:"paid"`
	AddDate  time.Time       `json:"add_date" db:"add_date"`
	PaidDate *time.Time      `json:"paid_date" db:"paid_date"`
}

// InvoiceSummary is the list view of an invoice.
type InvoiceSummary struct {
	ID       int    `json:"id" db:"id"`
	CompCode string `json:"comp_code" db:"comp_code"`
}

// InvoiceDetail is an invoice with its company embedded in place of the
// company code.
type InvoiceDetail struct {
	ID       int             `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  Company         `json:"company"`
}

// NewInvoiceDetail joins an invoice with its company.
func NewInvoiceDetail(inv Invoice, company Company) InvoiceDetail {
	return InvoiceDetail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company:  company,
	}
}
