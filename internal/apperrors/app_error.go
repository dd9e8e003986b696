package apperrors

import (
	"net/http"
)

// AppError 自定义错误类型
// MessageID 非空时，错误中间件按请求语言翻译；Message 作为翻译缺失时的兜底文本
type AppError struct {
	Code      int
	Message   string
	MessageID string
	Data      map[string]interface{}
	Cause     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Localized 创建可翻译的错误
func Localized(code int, messageID, fallback string, data map[string]interface{}) *AppError {
	return &AppError{
		Code:      code,
		Message:   fallback,
		MessageID: messageID,
		Data:      data,
	}
}

// Wrap 附加原始错误
func (e *AppError) Wrap(cause error) *AppError {
	e.Cause = cause
	return e
}

// InvalidRequestErrorDefault 默认参数校验错误
func InvalidRequestErrorDefault() *AppError {
	return Localized(http.StatusBadRequest, "error.invalid_request", "Parameter verification failed", nil)
}

// LocaleNotFoundError 语言包不存在
func LocaleNotFoundError(locale string) *AppError {
	return Localized(http.StatusNotFound, "error.locale_not_found", "Locale not found: "+locale,
		map[string]interface{}{"Locale": locale})
}

// SystemErrorDefault 默认系统内部错误
func SystemErrorDefault() *AppError {
	return Localized(http.StatusInternalServerError, "error.system", "System error", nil)
}
