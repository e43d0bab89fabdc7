package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if e.Error() != "INTERNAL_ERROR: boom" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}

	simple := NewDomainErrorSimple("ZONE_NOT_FOUND", "Zone not found", http.StatusNotFound)
	if simple.Error() != "ZONE_NOT_FOUND: Zone not found" {
		t.Fatalf("unexpected error string: %q", simple.Error())
	}

	withDetails := simple.WithDetails(map[string]string{"zone_id": "z-1"})
	if simple.Details != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
	body := withDetails.ToHTTPError()
	if body.Code != "ZONE_NOT_FOUND" || body.Details == nil {
		t.Fatalf("unexpected http error: %+v", body)
	}
}
