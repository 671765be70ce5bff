package authsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int

	// Label is the status text the server put in "error", e.g. "Conflict".
	Label string

	// Messages holds the server's message, or every field message for a
	// validation failure.
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("authkit: %d %s", e.StatusCode, e.Label)
	}
	return fmt.Sprintf("authkit: %d %s: %s", e.StatusCode, e.Label, strings.Join(e.Messages, "; "))
}

// ValidationError is returned before any request is sent when the client
// side checks fail.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "authkit: invalid request: " + strings.Join(e.Messages, "; ")
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// errorBody matches both the auth error shape {statusCode,message,error} and
// the health failure shape {status,message,details}.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func parseErrorResponse(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Label:      http.StatusText(resp.StatusCode),
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		if s := strings.TrimSpace(string(body)); s != "" {
			apiErr.Messages = []string{s}
		}
		return apiErr
	}
	if eb.Error != "" {
		apiErr.Label = eb.Error
	}

	var single string
	if err := json.Unmarshal(eb.Message, &single); err == nil {
		apiErr.Messages = []string{single}
		return apiErr
	}
	var many []string
	if err := json.Unmarshal(eb.Message, &many); err == nil {
		apiErr.Messages = many
	}
	return apiErr
}
