package redmine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the Redmine REST API.
type APIError struct {
	StatusCode int
	// Messages holds the entries of Redmine's {"errors": [...]} body, when present.
	Messages []string
	// Body is the raw response body.
	Body string
}

func (err *APIError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "redmine: HTTP %d", err.StatusCode)
	if len(err.Messages) > 0 {
		fmt.Fprintf(&builder, ": %s", strings.Join(err.Messages, "; "))
	}
	return builder.String()
}

// ResponseBody returns the raw body of the failed response.
func (err *APIError) ResponseBody() string {
	return err.Body
}

// IsNotFound reports whether err is a Redmine 404 response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsUnauthorized reports whether err is a 401 or 403 response, usually a bad API key.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && (apiError.StatusCode == 401 || apiError.StatusCode == 403)
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode, Body: string(body)}
	var parsed struct {
		Errors []string `json:"errors"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		apiError.Messages = parsed.Errors
	}
	return apiError
}
