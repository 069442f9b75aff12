package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Security & Authentication (SEC) ----

func ErrUnauthorized() *AppError {
	return New("SEC_001", "Caller is not the controller owner", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

func ErrMissingAuthHeaders() *AppError {
	return New("SEC_005", "Missing authentication headers", http.StatusUnauthorized)
}

// ---- Controller (CTL) ----

func ErrOperationInFlight() *AppError {
	return New("CTL_001", "Another operation is already in flight", http.StatusConflict)
}

// ---- Action validation (ACT) ----

func ErrInvalidAmount() *AppError {
	return New("ACT_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrZeroAddress() *AppError {
	return New("ACT_002", "Zero address is not allowed", http.StatusBadRequest)
}

func ErrInvalidOrder() *AppError {
	return New("ACT_003", "Order size and limit price must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidTimeInForce() *AppError {
	return New("ACT_004", "Unknown time in force", http.StatusBadRequest)
}

func ErrInvalidWalletName() *AppError {
	return New("ACT_005", "Wallet name must be 1-64 bytes", http.StatusBadRequest)
}

func ErrSystemAddressUnset() *AppError {
	return New("ACT_006", "System address is not configured", http.StatusUnprocessableEntity)
}

// ---- External calls (EXT) ----

func ErrDispatchFailed(err error) *AppError {
	return Wrap("EXT_001", "Dispatch gateway call failed", http.StatusBadGateway, err)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("EXT_002", "Asset transfer failed", http.StatusBadGateway, err)
}

func ErrInsufficientBalance() *AppError {
	return New("EXT_003", "Insufficient balance for transfer", http.StatusUnprocessableEntity)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}

// Validation returns an ACT_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("ACT_001", message, http.StatusBadRequest)
}
