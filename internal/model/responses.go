package model

// Every response wraps its payload under a named key.

type CompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}

type CompanyResponse struct {
	Company Company `json:"company"`
}

type CompanyDetailResponse struct {
	Company CompanyDetail `json:"company"`
}

type InvoicesResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}

// CompanyInvoicesResponse lists a company's invoices under "company".
type CompanyInvoicesResponse struct {
	Company []Invoice `json:"company"`
}
