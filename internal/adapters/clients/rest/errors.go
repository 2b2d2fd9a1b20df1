// Package rest implements the outbound adapter for the todo server's REST
// API. It translates between wire representations and domain types and
// normalizes HTTP and transport failures into domain errors.
package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ybrd/todo/internal/domain"
	"github.com/ybrd/todo/internal/platform/httpclient"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail represents an RFC 9457 Problem Details response body.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within a problem body.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an HTTP error response to a domain error. When
// the content type is application/problem+json the detail field provides
// context; 400/422 responses with field-level errors become a
// *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusGatewayTimeout:
		return fmt.Errorf("%s: %w", detail, domain.ErrTimeout)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// TranslateTransportError normalizes request errors that produced no
// response. Timeouts become domain.ErrTimeout with an unreachability hint;
// circuit-breaker rejections become domain.ErrUnavailable. Other errors pass
// through unchanged.
func TranslateTransportError(err error) error {
	switch {
	case httpclient.IsTimeout(err):
		return fmt.Errorf("no response from server, it may be unreachable: %w", domain.ErrTimeout)
	case httpclient.IsCircuitOpen(err):
		return fmt.Errorf("requests suspended after repeated failures: %w", domain.ErrUnavailable)
	default:
		return err
	}
}

// parseProblemDetail attempts to read an RFC 9457 body from the response.
// Returns a zero problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts problem error details to a domain
// ValidationError, stripping the "body." prefix from locations.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
