package email

// PreviewData holds sample values for rendering each template locally
// (see `biztime email-preview`).
var PreviewData = map[Template]map[string]string{
	TemplateInvoicePaid: {
		"InvoiceID":   "1",
		"CompanyCode": "apple",
		"Amount":      "1000.00",
		"PaidDate":    "2024-06-15",
	},
}
