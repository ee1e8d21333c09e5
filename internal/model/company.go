package model

import (
	"strings"

	"github.com/gosimple/slug"
)

// Company is a row of the companies table.
type Company struct {
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// CompanySummary is the list view of a company.
type CompanySummary struct {
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}

// CompanyDetail is a company with the ids of its invoices.
type CompanyDetail struct {
	Company
	Invoices []int `json:"invoices"`
}

// CompanyCode derives the company code from its display name:
// lowercase, with runs of non-alphanumerics collapsed into a single '-'.
//
//	"Apple"      -> "apple"
//	"Big Corp!"  -> "big-corp"
func CompanyCode(name string) string {
	return slug.Make(strings.TrimSpace(name))
}
