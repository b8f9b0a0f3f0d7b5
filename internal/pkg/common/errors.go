package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// 完成服務與快取的哨兵錯誤
var (
	// ErrProviderUnavailable 未配置任何完成服務供應商
	ErrProviderUnavailable = errors.New("no completion provider configured")
	// ErrProviderError 上游供應商呼叫失敗或回傳非成功狀態
	ErrProviderError = errors.New("completion provider error")
	// ErrMalformedResponse 完成文字無法解析為 JSON
	ErrMalformedResponse = errors.New("malformed completion response")
	// ErrCacheDisabled 快取未啟用或未命中
	ErrCacheDisabled = errors.New("cache disabled")
	// ErrCacheFull 快取已滿
	ErrCacheFull = errors.New("cache full")
)

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SchemaError 表示語法正確但欄位不符合預期結構的回應
type SchemaError struct {
	Field  string // 第一個驗證失敗的欄位
	Reason string // 失敗原因
}

// Error 實現 error 介面
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %q: %s", e.Field, e.Reason)
}

// NewSchemaError 創建新的結構驗證錯誤
func NewSchemaError(field, reason string) error {
	return &SchemaError{Field: field, Reason: reason}
}

// IsSchemaError 檢查是否為結構驗證錯誤
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// HTTPStatus 將錯誤分類映射為 HTTP 狀態碼
func HTTPStatus(err error) int {
	switch {
	case IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrProviderUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrProviderError),
		errors.Is(err, ErrMalformedResponse),
		IsSchemaError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
