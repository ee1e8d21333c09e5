package model

import (
	"encoding/json"
	"testing"
)

func TestCompanyCode(t *testing.T) {
	tests := map[string]string{
		"Apple":       "apple",
		"TacoTime":    "tacotime",
		"Big Corp!":   "big-corp",
		"  IBM  ":     "ibm",
		"Ben & Jerry": "ben-and-jerry",
		"!!!":         "",
	}

	for name, want := range tests {
		if got := CompanyCode(name); got != want {
			t.Errorf("CompanyCode(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestCompanyDetailJSON(t *testing.T) {
	detail := CompanyDetail{
		Company:  Company{Code: "apple", Name: "Apple", Description: "Maker of OSX."},
		Invoices: []int{1, 2},
	}

	raw, err := json.Marshal(CompanyDetailResponse{Company: detail})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"company":{"code":"apple","name":"Apple","description":"Maker of OSX.","invoices":[1,2]}}`
	if string(raw) != want {
		t.Errorf("got  %s\nwant %s", raw, want)
	}
}
