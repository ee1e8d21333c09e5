// Package model holds the domain types shared by the repository, service
// and handler layers, plus the request/response payloads of the API.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers ("amt": 1000), not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// validate is shared by every request type; validator caches struct
// metadata, so one instance serves all requests.
var validate = newValidator()

// newValidator reports fields by their wire name (json, else param tag)
// so clients see "comp_code" rather than "CompCode".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// StatusResponse is returned by delete endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// Deleted is the body every successful delete returns.
var Deleted = StatusResponse{Status: "deleted"}
