// Package errors 基础设施错误：存储、传输、配置与装配失败时携带错误码返回，
// 启动器据错误码决定退出码。
package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// ErrorCode 错误代码
type ErrorCode string

const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeNotSupported ErrorCode = "NOT_SUPPORTED"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeDependency   ErrorCode = "DEPENDENCY_ERROR"
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"
	ErrCodeQueue        ErrorCode = "QUEUE_ERROR"
	ErrCodeConfig       ErrorCode = "CONFIG_ERROR"
)

type field struct {
	key   string
	value any
}

// AppError 错误码 + 说明 + 可选的原始错误与上下文字段
//
// 上下文字段按添加顺序出现在 Error() 中；AppError 一经创建不再修改。
type AppError struct {
	code    ErrorCode
	message string
	cause   error
	fields  []field
}

func NewError(code ErrorCode, message string) *AppError {
	return &AppError{code: code, message: message}
}

func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{code: code, message: fmt.Sprintf(format, args...)}
}

// WrapError 以 code 包装 err，err 为 nil 时返回 nil
func WrapError(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{code: code, message: message, cause: err}
}

// Error 形如 "[CODE] message (k=v, ...): cause"
func (e *AppError) Error() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(string(e.code))
	sb.WriteString("] ")
	sb.WriteString(e.message)
	if len(e.fields) > 0 {
		parts := make([]string, 0, len(e.fields))
		for _, f := range e.fields {
			parts = append(parts, fmt.Sprintf("%s=%v", f.key, f.value))
		}
		sb.WriteString(" (")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString(")")
	}
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}
	return sb.String()
}

func (e *AppError) Code() ErrorCode { return e.code }

func (e *AppError) Unwrap() error { return e.cause }

// Is 同错误码的 AppError 视为相等，否则交给 cause 链
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.code == other.code
}

// WithContext 返回追加了 key=value 的副本
func (e *AppError) WithContext(key string, value any) *AppError {
	fields := make([]field, len(e.fields), len(e.fields)+1)
	copy(fields, e.fields)
	return &AppError{
		code:    e.code,
		message: e.message,
		cause:   e.cause,
		fields:  append(fields, field{key: key, value: value}),
	}
}

// 供 errors.Is 比较的哨兵
var (
	ErrNotFound     = NewError(ErrCodeNotFound, "资源未找到")
	ErrNotSupported = NewError(ErrCodeNotSupported, "操作不受支持")
)

func IsNotFound(err error) bool     { return IsErrorCode(err, ErrCodeNotFound) }
func IsValidation(err error) bool   { return IsErrorCode(err, ErrCodeValidation) }
func IsNotSupported(err error) bool { return IsErrorCode(err, ErrCodeNotSupported) }

// IsErrorCode 检查错误链上最外层 AppError 的错误码
func IsErrorCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return stdErrors.As(err, &appErr) && appErr.code == code
}

// GetErrorCode 最外层 AppError 的错误码；nil 返回空串，非 AppError 视为内部错误
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.code
	}
	return ErrCodeInternal
}
