package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-portal/external/apifootball"
	"github.com/riskibarqy/football-portal/internal/platform/resilience"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

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

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_UpstreamAndCircuitErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{
			name:   "api error",
			err:    fmt.Errorf("list teams: %w", &apifootball.APIError{StatusCode: 500, StatusText: "Internal Server Error"}),
			status: http.StatusBadGateway,
			reason: "upstreamError",
		},
		{
			name:   "circuit open",
			err:    fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, resilience.ErrCircuitOpen),
			status: http.StatusServiceUnavailable,
			reason: "circuitOpen",
		},
		{
			name:   "transport failure",
			err:    fmt.Errorf("%w: send request: connection refused", usecase.ErrDependencyUnavailable),
			status: http.StatusServiceUnavailable,
			reason: "dependencyUnavailable",
		},
		{
			name:   "deadline",
			err:    fmt.Errorf("get standings: %w", context.DeadlineExceeded),
			status: http.StatusGatewayTimeout,
			reason: "deadlineExceeded",
		},
		{
			name:   "client deadline through the request chain",
			err:    fmt.Errorf("get standings: %w", &url.Error{Op: "Get", URL: "https://upstream/standings", Err: context.DeadlineExceeded}),
			status: http.StatusGatewayTimeout,
			reason: "deadlineExceeded",
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			reason: "internalError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.status || got.Reason != tt.reason {
				t.Fatalf("mapError(%v)=%+v want status=%d reason=%s", tt.err, got, tt.status, tt.reason)
			}
		})
	}
}
