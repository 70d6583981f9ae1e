package apifootball

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-portal/internal/usecase"
)

// APIError is returned for any non-2xx provider response.
type APIError struct {
	StatusCode int
	StatusText string
}

func newAPIError(resp *http.Response) *APIError {
	return &APIError{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.StatusCode, e.StatusText)
}

// Unwrap lets callers match provider failures with usecase.ErrDependencyUnavailable.
func (e *APIError) Unwrap() error {
	return usecase.ErrDependencyUnavailable
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// isCircuitFailure counts transport errors, timeouts, 429 and 5xx towards
// opening the breaker. A caller that went away is not an upstream failure.
func isCircuitFailure(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	return true
}
