package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	custom := "INVOICE_NOT_FOUND"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("no token", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("nope", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("gone", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"not found custom code", NewNotFoundError("gone", true, &custom), http.StatusNotFound, custom},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestInternalServerErrorHidesDetail(t *testing.T) {
	err := NewInternalServerError()
	if err.Message != "Internal Server Error" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Override {
		t.Error("500s must not be marked safe to display")
	}
}

func TestHTTPErrorUnwrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Can't find company with code: blargh", true, nil))

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As failed to find *HTTPError")
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d", httpErr.Status)
	}
	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("errors.Is should match any *HTTPError")
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewBadRequestError("base", true, nil, []FieldError{{Field: "amt", Error: "is required"}}, nil)
	copied := base.WithMessage("changed")

	if base.Message != "base" {
		t.Error("WithMessage mutated the original")
	}
	if copied.Message != "changed" || copied.Status != base.Status || len(copied.Errors) != 1 {
		t.Errorf("unexpected copy: %+v", copied)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("amt must be positive"))
	if err.Status != http.StatusBadRequest {
		t.Errorf("Status = %d", err.Status)
	}
	if err.Message != "Validation failed: amt must be positive" {
		t.Errorf("Message = %q", err.Message)
	}
}
