package dto

import (
	"net/http"
	"strings"
)

// Wire error codes, format ERR_<CATEGORY>_<DESCRIPTION>. Domain errors get
// translated into these by NormalizeErrorCode before they leave the API.
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"

	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	ErrCodeValidationRange    = "ERR_VALIDATION_RANGE"

	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"

	ErrCodeInvalidState = "ERR_INVALID_STATE"

	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"

	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// GetHTTPStatus maps a wire error code onto its HTTP status. Unknown codes
// report as internal errors.
func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidation, ErrCodeValidationRequired, ErrCodeValidationRange,
		ErrCodeBadRequest, ErrCodeInvalidInput, ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadyExists, ErrCodeConflict, ErrCodeConcurrencyConflict:
		return http.StatusConflict
	case ErrCodeInvalidState:
		return http.StatusUnprocessableEntity
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NormalizeErrorCode turns a domain error code into its wire form. Domain
// validation codes all start with INVALID_ (INVALID_TITLE, INVALID_RATING,
// INVALID_TAB and so on) and collapse into ERR_INVALID_INPUT; not-found
// codes collapse into ERR_NOT_FOUND. Wire-format codes pass through.
func NormalizeErrorCode(code string) string {
	switch code {
	case "NOT_FOUND":
		return ErrCodeNotFound
	case "ALREADY_EXISTS":
		return ErrCodeAlreadyExists
	case "INVALID_STATE":
		return ErrCodeInvalidState
	case "CONCURRENCY_CONFLICT":
		return ErrCodeConcurrencyConflict
	case "VALIDATION_ERROR":
		return ErrCodeValidation
	case "BAD_REQUEST":
		return ErrCodeBadRequest
	case "INTERNAL_ERROR":
		return ErrCodeInternal
	}

	if strings.HasPrefix(code, "ERR_") {
		return code
	}
	if strings.HasSuffix(code, "_NOT_FOUND") {
		return ErrCodeNotFound
	}
	if strings.HasPrefix(code, "INVALID_") {
		return ErrCodeInvalidInput
	}
	return code
}
