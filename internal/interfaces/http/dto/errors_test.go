package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusUnprocessableEntity},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{ErrCodeTokenMaxRefresh, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeAlreadyPublished, http.StatusUnprocessableEntity},
		{"PROJECT_HAS_FATAL_ERRORS", http.StatusUnprocessableEntity},
		{ErrCodeDocumentsUnavailable, http.StatusServiceUnavailable},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"INVALID_CURRENCY", http.StatusBadRequest},
		{"INVALID_ROLE", http.StatusBadRequest},
		{"ROLE_ALREADY_ASSIGNED", http.StatusConflict},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"ALREADY_PUBLISHED", ErrCodeInvalidState},
		{"INVALID_AMOUNT", ErrCodeInvalidInput},
		{"INVALID_STATE", ErrCodeInvalidState},
		{"PASSWORD_HASH_ERROR", ErrCodeInternal},
		{"UNKNOWN_CODE", "UNKNOWN_CODE"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.input))
		})
	}
}

func TestErrorCodesAreMapped(t *testing.T) {
	codes := []string{
		ErrCodeInternal, ErrCodeUnavailable, ErrCodeValidation, ErrCodeBadRequest,
		ErrCodeInvalidInput, ErrCodeInvalidJSON, ErrCodeUnauthorized, ErrCodeForbidden,
		ErrCodeInvalidCredentials, ErrCodeTokenExpired, ErrCodeTokenInvalid,
		ErrCodeTokenRevoked, ErrCodeTokenMaxRefresh, ErrCodeNotFound, ErrCodeAlreadyExists,
		ErrCodeConcurrencyConflict, ErrCodeInvalidState, ErrCodeDocumentsUnavailable,
		ErrCodeRateLimited,
	}
	for _, code := range codes {
		_, ok := ErrorCodeHTTPStatus[code]
		assert.True(t, ok, "code %s has no status", code)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "Resource not found")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
	assert.Empty(t, resp.Error.RequestID)
	assert.NotZero(t, resp.Error.Timestamp)
}

func TestNewErrorResponse_KeepsDomainCode(t *testing.T) {
	resp := NewErrorResponse("ALREADY_PUBLISHED", "Already published")
	assert.Equal(t, "ALREADY_PUBLISHED", resp.Error.Code)
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeForbidden, "Access to this resource is forbidden", "req-123")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeForbidden, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "code", Code: "validation.pattern", Message: "Does not match the expected pattern"},
		{Field: "budget", Code: "client.contract.form.error.negative-amount", Message: "The budget must be greater than zero"},
	}

	resp := NewValidationErrorResponse("Validation failed", "req-789", details)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-789", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "code", resp.Error.Details[0].Field)
	assert.Equal(t, "client.contract.form.error.negative-amount", resp.Error.Details[1].Code)
}

func TestNewErrorResponseWithHelp(t *testing.T) {
	help := "/swagger/index.html"
	resp := NewErrorResponseWithHelp(ErrCodeUnauthorized, "Not authenticated", "req-001", help)

	assert.Equal(t, ErrCodeUnauthorized, resp.Error.Code)
	assert.Equal(t, help, resp.Error.Help)
}

func TestErrorResponseJSON(t *testing.T) {
	resp := NewValidationErrorResponse("Validation failed", "req-test", []ValidationDetail{
		{Field: "systemCurrency", Code: "validation.currency", Message: "Must be an ISO 4217 currency code"},
	})

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, false, raw["success"])
	assert.NotContains(t, raw, "data")

	errObj := raw["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	assert.Equal(t, "req-test", errObj["request_id"])
	detail := errObj["details"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "systemCurrency", detail["field"])
	assert.Equal(t, "validation.currency", detail["code"])
}

func TestErrorResponseTimestamp(t *testing.T) {
	before := time.Now()
	resp := NewErrorResponse(ErrCodeInternal, "Server error")
	after := time.Now()

	assert.False(t, resp.Error.Timestamp.Before(before))
	assert.False(t, resp.Error.Timestamp.After(after))
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(map[string]string{"code": "ABC-123"})

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
	assert.Nil(t, resp.Meta)
}

func TestNewSuccessResponseWithMetaPagination(t *testing.T) {
	tests := []struct {
		total         int64
		page          int
		pageSize      int
		expectedPages int
		expectedSize  int
		expectedPage  int
	}{
		{100, 1, 10, 10, 10, 1},
		{101, 2, 10, 11, 10, 2},
		{0, 1, 10, 0, 10, 1},
		{9, 1, 10, 1, 10, 1},
		{11, 1, 10, 2, 10, 1},
		{100, 1, 0, 5, 20, 1},
		{100, 0, -1, 5, 20, 1},
	}

	for _, tt := range tests {
		resp := NewSuccessResponseWithMeta(nil, tt.total, tt.page, tt.pageSize)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, tt.expectedPages, resp.Meta.TotalPages)
		assert.Equal(t, tt.expectedSize, resp.Meta.PageSize)
		assert.Equal(t, tt.expectedPage, resp.Meta.Page)
		assert.Equal(t, tt.total, resp.Meta.Total)
	}
}
