package qb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents one error element inside a Fault envelope. Codes
// are decimal strings in the vendor wire format.
type APIError struct {
	Code    string `json:"code"              yaml:"code"`
	Message string `json:"Message"           yaml:"message"`
	Detail  string `json:"Detail,omitempty"  yaml:"detail,omitempty"`
	Element string `json:"element,omitempty" yaml:"element,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code: %s)", e.Message, e.Detail, e.Code)
}

// Fault is the error payload inside a ResponseError.
type Fault struct {
	Errors []APIError `json:"Error" yaml:"error"`
	Type   string     `json:"type"  yaml:"type"`
}

// ResponseError represents the error envelope returned on failed
// requests, plus the HTTP status it arrived with.
type ResponseError struct {
	Fault      Fault  `json:"Fault"          yaml:"fault"`
	Time       string `json:"time,omitempty" yaml:"time,omitempty"`
	StatusCode int    `json:"-"              yaml:"-"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Fault.Errors) == 0 {
		return fmt.Sprintf("unknown error (status: %d)", e.StatusCode)
	}

	if len(e.Fault.Errors) == 1 {
		return e.Fault.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Fault.Errors)
}

// FirstError returns the first error element or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Fault.Errors) > 0 {
		return &e.Fault.Errors[0]
	}

	return nil
}

// Fault type names.
const (
	FaultTypeValidation     = "ValidationFault"
	FaultTypeAuthentication = "AuthenticationFault"
	FaultTypeAuthorization  = "AuthorizationFault"
	FaultTypeService        = "ServiceFault"
	FaultTypeSystem         = "SystemFault"
)

// Common error codes.
const (
	ErrorCodeObjectNotFound     = "610"
	ErrorCodeStaleObject        = "5010"
	ErrorCodeDuplicateName      = "6240"
	ErrorCodeBusinessValidation = "6000"
	ErrorCodeInvalidToken       = "3200"
	ErrorCodeAuthentication     = "100"
	ErrorCodeThrottled          = "3001"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrRealmIDRequired          = errors.New("realm id is required")
	ErrEntityRequired           = errors.New("entity is required")
	ErrMissingIDAndSyncToken    = errors.New("entity must carry Id and SyncToken")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrRefreshTokenRequired     = errors.New("refresh token is required")
	ErrChargeRequired           = errors.New("charge request is required")
	ErrEmptyBatch               = errors.New("batch contains no items")
	ErrPollerAlreadyRunning     = errors.New("change poller already running")
	ErrRevokeNotSupported       = errors.New("credentials do not support revocation")
)

// IsNotFound checks if the error is an object-not-found error.
func IsNotFound(err error) bool {
	return hasErrorCode(err, ErrorCodeObjectNotFound)
}

// IsStale checks if the error is a stale-object (SyncToken mismatch) error.
func IsStale(err error) bool {
	return hasErrorCode(err, ErrorCodeStaleObject)
}

// IsValidation checks if the error is a validation fault.
func IsValidation(err error) bool {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.Fault.Type == FaultTypeValidation
	}

	return false
}

// IsAuthError checks if the error is an authentication or authorization
// fault.
func IsAuthError(err error) bool {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		switch errResp.Fault.Type {
		case FaultTypeAuthentication, FaultTypeAuthorization:
			return true
		}

		return errResp.StatusCode == 401 || errResp.StatusCode == 403
	}

	return false
}

func hasErrorCode(err error, code string) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		for i := range errResp.Fault.Errors {
			if errResp.Fault.Errors[i].Code == code {
				return true
			}
		}
	}

	return false
}

// ParseResponseError parses an error envelope from a response body.
func ParseResponseError(data []byte, statusCode int) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	errResp.StatusCode = statusCode

	return &errResp, nil
}
