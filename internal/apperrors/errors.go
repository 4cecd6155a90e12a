// Package apperrors defines the error values surfaced by the room API client.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误类别
type Kind int

const (
	// KindTransport 非 2xx 的 HTTP 响应
	KindTransport Kind = iota + 1
	// KindBusiness HTTP 成功但业务状态码不是 200
	KindBusiness
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBusiness:
		return "business"
	default:
		return "unknown"
	}
}

// APIError 房间接口错误（传输层和业务层共享）
type APIError struct {
	Kind    Kind
	Op      string // 触发错误的操作，例如 "create room"
	Status  int    // HTTP 状态码
	Code    int    // 业务状态码，仅 KindBusiness 有效
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound = &APIError{Kind: KindTransport, Op: "room info", Status: http.StatusNotFound, Message: "房间不存在"}
)

// NewHTTPError builds the error for a non-success HTTP status.
func NewHTTPError(op string, status int) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Op:      op,
		Status:  status,
		Message: fmt.Sprintf("HTTP error! status: %d", status),
	}
}

// NewBusinessError builds the error for a non-200 business code. An empty
// server message is replaced by fallback.
func NewBusinessError(op string, status, code int, message, fallback string) *APIError {
	if message == "" {
		message = fallback
	}
	return &APIError{
		Kind:    KindBusiness,
		Op:      op,
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// IsTransport reports whether err carries a non-success HTTP status.
func IsTransport(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindTransport
}

// IsBusiness reports whether err carries a non-200 business code.
func IsBusiness(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindBusiness
}

// IsNotFound reports whether err is the room-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound)
}
