package responses

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"staffhub/internal/structs"
)

func TestFromError_NotFound(t *testing.T) {
	resp := FromError(structs.ErrNotFound)
	if resp.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Status)
	}
}

func TestFromError_ClientErrors(t *testing.T) {
	clientErrs := []error{
		structs.ErrDuplicateEmail,
		structs.ErrInvalidDateRange,
		structs.ErrUnknownField,
		structs.ErrInvalidEnumValue,
		structs.ErrInvalidDateFormat,
		structs.ErrInvalidFieldValue,
		structs.ErrCannotDeleteOngoing,
	}
	for _, err := range clientErrs {
		resp := FromError(err)
		if resp.Status != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", err, resp.Status)
		}
		if resp.Message == "" {
			t.Fatalf("expected message for %v", err)
		}
	}
}

func TestFromError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("field 'salary': %w", structs.ErrInvalidFieldValue)
	resp := FromError(wrapped)
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped sentinel, got %d", resp.Status)
	}
}

func TestFromError_ValidationCarriesViolations(t *testing.T) {
	vErr := &structs.ValidationError{Violations: map[string][]string{
		"salary": {"Must be greater than 0"},
	}}

	resp := FromError(vErr)
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Status)
	}
	if len(resp.ValidationErrors["salary"]) != 1 {
		t.Fatalf("expected salary violations in payload, got %v", resp.ValidationErrors)
	}
}

func TestFromError_UnclassifiedIsOpaque500(t *testing.T) {
	resp := FromError(errors.New("pq: connection refused"))
	if resp.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Status)
	}
	if resp.Message != "An unexpected error occurred" {
		t.Fatalf("internal detail leaked: %q", resp.Message)
	}
}
