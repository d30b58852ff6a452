package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb throttled")
	e := NewDomainError("STORE_UNAVAILABLE", "Store unavailable", cause, http.StatusServiceUnavailable)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "STORE_UNAVAILABLE: Store unavailable: dynamodb throttled" {
		t.Fatalf("unexpected error text: %s", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "STORE_UNAVAILABLE" || body.Message != "Store unavailable" || body.Field != "" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_WithField(t *testing.T) {
	base := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	withField := base.WithField("description")

	if base.Field != "" {
		t.Fatalf("base must not change")
	}
	if withField.ToHTTPError().Field != "description" || withField.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected copy: %+v", withField)
	}
	if withField.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected error text: %s", withField.Error())
	}
}
