package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidCredentials matches any APIError caused by a rejected credential.
var ErrInvalidCredentials = errors.New("could not validate credentials")

const (
	invalidCredentialsDetail = "Could not validate credentials"
	genericDetail            = "Something went wrong"
)

// APIError is a non-success response from the backend.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

// Is lets errors.Is(err, ErrInvalidCredentials) match rejected credentials.
func (e *APIError) Is(target error) bool {
	if target != ErrInvalidCredentials {
		return false
	}
	return e.Status == 401 || e.Detail == invalidCredentialsDetail
}

// Detail returns the server-reported reason in err, or the generic text when
// err carries none.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return genericDetail
}

// parseDetail pulls "detail" out of an error body. The backend sends either a
// plain string or a list of validation errors with a "msg" each.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}
