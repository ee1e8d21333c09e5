package email

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SendInvoicePaidEmail tells the billing inbox that an invoice was paid.
func (c *Client) SendInvoicePaidEmail(to string, invoiceID int, compCode string, amt decimal.Decimal, paidDate time.Time) error {
	data := map[string]string{
		"InvoiceID":   strconv.Itoa(invoiceID),
		"CompanyCode": compCode,
		"Amount":      amt.StringFixed(2),
		"PaidDate":    paidDate.UTC().Format(time.DateOnly),
	}

	return c.SendEmail(
		to,
		fmt.Sprintf("Invoice #%d paid by %s", invoiceID, compCode),
		TemplateInvoicePaid,
		data,
	)
}
