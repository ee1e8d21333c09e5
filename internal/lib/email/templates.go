package email

import "embed"

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateInvoicePaid corresponds to templates/invoice_paid.html
	TemplateInvoicePaid Template = "invoice_paid"
)

//go:embed templates/*.html
var templates embed.FS
