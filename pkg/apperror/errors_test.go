package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("ACT_001", "Amount must be greater than zero", http.StatusBadRequest),
			expected: "[ACT_001] Amount must be greater than zero",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("EXT_001", "Dispatch failed", http.StatusBadGateway, fmt.Errorf("connection refused")),
			expected: "[EXT_001] Dispatch failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("ACT_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestSecurityErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unauthorized", ErrUnauthorized(), "SEC_001", 401},
		{"InvalidSignature", ErrInvalidSignature(), "SEC_002", 401},
		{"TimestampExpired", ErrTimestampExpired(), "SEC_003", 403},
		{"NonceUsed", ErrNonceUsed(), "SEC_004", 403},
		{"MissingAuthHeaders", ErrMissingAuthHeaders(), "SEC_005", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestActionValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "ACT_001", 400},
		{"ZeroAddress", ErrZeroAddress(), "ACT_002", 400},
		{"InvalidOrder", ErrInvalidOrder(), "ACT_003", 400},
		{"InvalidTimeInForce", ErrInvalidTimeInForce(), "ACT_004", 400},
		{"InvalidWalletName", ErrInvalidWalletName(), "ACT_005", 400},
		{"SystemAddressUnset", ErrSystemAddressUnset(), "ACT_006", 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestExternalCallErrors(t *testing.T) {
	inner := fmt.Errorf("rpc: nonce too low")

	dispatchErr := ErrDispatchFailed(inner)
	assert.Equal(t, "EXT_001", dispatchErr.Code)
	assert.Equal(t, 502, dispatchErr.HTTPStatus)
	assert.True(t, errors.Is(dispatchErr, inner))

	transferErr := ErrTransferFailed(inner)
	assert.Equal(t, "EXT_002", transferErr.Code)
	assert.Equal(t, 502, transferErr.HTTPStatus)

	balErr := ErrInsufficientBalance()
	assert.Equal(t, "EXT_003", balErr.Code)
	assert.Equal(t, 422, balErr.HTTPStatus)
}

func TestGuardError(t *testing.T) {
	err := ErrOperationInFlight()
	assert.Equal(t, "CTL_001", err.Code)
	assert.Equal(t, 409, err.HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_002", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	intErr := InternalError(inner)
	assert.Equal(t, "SYS_001", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestValidationHelper(t *testing.T) {
	err := Validation("weiAmount must be greater than zero")
	assert.Equal(t, "ACT_001", err.Code)
	assert.Equal(t, 400, err.HTTPStatus)
	assert.Contains(t, err.Message, "weiAmount")
}
