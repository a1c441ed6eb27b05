package apperr

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zoo-inventory/internal/platform/logger"
)

func TestStatus(t *testing.T) {
	driverErr := errors.New("dial tcp 10.0.0.1:5432: connection refused")

	cases := []struct {
		err  error
		want int
	}{
		{Validation("Name is required and cannot be empty"), http.StatusBadRequest},
		{NotFound("Animal with id %d not found", 3), http.StatusNotFound},
		{Connection("animals.list", driverErr), http.StatusInternalServerError},
		{Query("animals.list", driverErr), http.StatusInternalServerError},
		{Result("animals.list", driverErr), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFound("x")), http.StatusNotFound},
	}

	for _, tc := range cases {
		if got := Status(tc.err); got != tc.want {
			t.Fatalf("Status(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestError_MessageIncludesDriverText(t *testing.T) {
	err := Connection("cares.get", errors.New("login failed"))
	if err.Error() != "Database connection error: login failed" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, errors.Unwrap(err)) {
		t.Fatalf("expected Unwrap to expose cause")
	}
}

func TestResponder_SanitizesInternalErrors(t *testing.T) {
	var logs bytes.Buffer
	rs := Responder{Log: logger.New(logger.Options{Output: &logs, Level: logger.Debug})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/animals/list", nil)
	rs.Write(rec, req, Query("animals.list", errors.New("syntax error at or near SELEC")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "SELEC") {
		t.Fatalf("driver text leaked to client: %q", rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "internal error (ref ") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "SELEC") || !strings.Contains(logs.String(), "op=animals.list") {
		t.Fatalf("expected full detail in logs, got %q", logs.String())
	}
}

func TestResponder_ExposeInternalAndClientErrors(t *testing.T) {
	rs := Responder{Log: logger.Nop(), ExposeInternal: true}

	rec := httptest.NewRecorder()
	rs.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Connection("x", errors.New("login failed")))
	if !strings.Contains(rec.Body.String(), "Database connection error: login failed") {
		t.Fatalf("expected driver text, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	rs.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), NotFound("Care with id %d not found", 9))
	if rec.Code != http.StatusNotFound || strings.TrimSpace(rec.Body.String()) != "Care with id 9 not found" {
		t.Fatalf("unexpected 404 response: %d %q", rec.Code, rec.Body.String())
	}
}
