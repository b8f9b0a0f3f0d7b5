package common

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("missing field")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "missing field", err.Error())

	// 包裝後仍可辨識
	wrapped := fmt.Errorf("request failed: %w", err)
	assert.True(t, IsValidationError(wrapped))

	assert.False(t, IsValidationError(ErrProviderError))
}

func TestSchemaError(t *testing.T) {
	err := NewSchemaError("recipes[0].title", "missing or empty")
	assert.True(t, IsSchemaError(err))
	assert.Contains(t, err.Error(), "recipes[0].title")
	assert.Contains(t, err.Error(), "missing or empty")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"驗證錯誤", NewValidationError("bad"), http.StatusBadRequest},
		{"無供應商", ErrProviderUnavailable, http.StatusServiceUnavailable},
		{"供應商錯誤", ErrProviderError, http.StatusBadGateway},
		{"包裝的供應商錯誤", fmt.Errorf("%w: timeout", ErrProviderError), http.StatusBadGateway},
		{"解析失敗", ErrMalformedResponse, http.StatusBadGateway},
		{"結構驗證失敗", NewSchemaError("title", "empty"), http.StatusBadGateway},
		{"未知錯誤", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
