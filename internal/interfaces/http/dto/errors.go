package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	// ErrCodeInvalidCredentials is used when login credentials don't match
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	// ErrCodeAccountLocked is used when the account is temporarily locked
	ErrCodeAccountLocked = "ERR_ACCOUNT_LOCKED"
	// ErrCodeAccountDeactivated is used when the account has been disabled
	ErrCodeAccountDeactivated = "ERR_ACCOUNT_DEACTIVATED"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeShopBlacklisted is used when an order references a blacklisted shop
	ErrCodeShopBlacklisted = "ERR_SHOP_BLACKLISTED"
	// ErrCodePaymentGateway is used when the payment gateway rejects or fails
	ErrCodePaymentGateway = "ERR_PAYMENT_GATEWAY"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeAccountLocked:      http.StatusForbidden,
	ErrCodeAccountDeactivated: http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:    http.StatusUnprocessableEntity,
	ErrCodeShopBlacklisted: http.StatusUnprocessableEntity,
	ErrCodePaymentGateway:  http.StatusBadGateway,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the standardized
// wire-level codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,

	// Identity
	"INVALID_CREDENTIALS":     ErrCodeInvalidCredentials,
	"ACCOUNT_LOCKED":          ErrCodeAccountLocked,
	"ACCOUNT_DEACTIVATED":     ErrCodeAccountDeactivated,
	"EMAIL_TAKEN":             ErrCodeAlreadyExists,
	"INVALID_ROLE":            ErrCodeInvalidInput,
	"INVALID_EMAIL":           ErrCodeInvalidInput,
	"INVALID_PASSWORD":        ErrCodeInvalidInput,
	"WEAK_PASSWORD":           ErrCodeInvalidInput,
	"INVALID_NAME":            ErrCodeInvalidInput,
	"INVALID_PHONE":           ErrCodeInvalidInput,
	"SELF_DISABLE":            ErrCodeBusinessRule,
	"TOKEN_EXPIRED":           ErrCodeTokenExpired,
	"TOKEN_INVALID":           ErrCodeTokenInvalid,
	"TOKEN_MAX_REFRESH":       ErrCodeTokenExpired,
	"TOKEN_GENERATION_FAILED": ErrCodeInternal,

	// Catalog
	"SLUG_TAKEN": ErrCodeAlreadyExists,

	// Shops
	"ALREADY_BLACKLISTED": ErrCodeInvalidState,
	"NOT_BLACKLISTED":     ErrCodeInvalidState,

	// Orders
	"EMPTY_ORDER":             ErrCodeInvalidInput,
	"CUSTOMER_NOT_FOUND":      ErrCodeNotFound,
	"SHOP_NOT_FOUND":          ErrCodeNotFound,
	"SHOP_BLACKLISTED":        ErrCodeShopBlacklisted,
	"INVALID_QUANTITY":        ErrCodeInvalidInput,
	"INVALID_PRICE":           ErrCodeInvalidInput,
	"INVALID_DISCOUNT":        ErrCodeInvalidInput,
	"INVALID_TRANSACTION_REF": ErrCodeInvalidInput,
	"INVALID_CALLBACK":        ErrCodeInvalidInput,
	"INVALID_PAYMENT_REQUEST": ErrCodeInvalidInput,
	"PAYMENT_GATEWAY_ERROR":   ErrCodePaymentGateway,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
