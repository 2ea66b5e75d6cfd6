package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
	"github.com/riskibarqy/cricket-tournament/internal/usecase"
)

type errorEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Error      struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Errors  []struct {
			Reason       string `json:"reason"`
			Message      string `json:"message"`
			Location     string `json:"location"`
			LocationType string `json:"locationType"`
		} `json:"errors"`
	} `json:"error"`
}

func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var body errorEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return body
}

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_ListsEveryFieldViolation(t *testing.T) {
	rec := httptest.NewRecorder()
	verr := validation.Errors{
		{Field: "email", Message: "Please enter a valid email address"},
		{Field: "pincode", Message: "Pincode must be a 6-digit number"},
	}
	writeError(context.Background(), rec, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, verr))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	body := decodeErrorEnvelope(t, rec)
	if body.Error.Status != "INVALID_ARGUMENT" || body.Error.Message != "validation failed" {
		t.Fatalf("unexpected error header: %+v", body.Error)
	}
	if len(body.Error.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(body.Error.Errors))
	}
	first := body.Error.Errors[0]
	if first.Location != "email" || first.LocationType != "body" || first.Reason != "invalidField" {
		t.Fatalf("unexpected field error: %+v", first)
	}
}

func TestWriteError_DuplicateIsConflict(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: %w", usecase.ErrConflict, &user.DuplicateError{Field: "whatsappNumber"}))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
	body := decodeErrorEnvelope(t, rec)
	if body.Error.Message != "whatsappNumber already exists" {
		t.Fatalf("unexpected message: %q", body.Error.Message)
	}
	if body.Error.Errors[0].Location != "whatsappNumber" || body.Error.Errors[0].Reason != "duplicate" {
		t.Fatalf("unexpected conflict detail: %+v", body.Error.Errors[0])
	}
}

func TestWriteError_InternalHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeErrorEnvelope(t, rec)
	if body.Error.Message != internalMessage || body.Error.Errors[0].Message != internalMessage {
		t.Fatalf("expected generic message, got %+v", body.Error)
	}
}

func TestWriteError_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: match=m-1", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if body := decodeErrorEnvelope(t, rec); body.Error.Status != "NOT_FOUND" {
		t.Fatalf("unexpected status: %q", body.Error.Status)
	}
}
