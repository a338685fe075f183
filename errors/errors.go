package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the coarse error category surfaced to callers.
type Kind string

const (
	KindValidation      Kind = "VALIDATION_ERROR"
	KindNotFound        Kind = "NOT_FOUND_ERROR"
	KindAuthorization   Kind = "AUTHORIZATION_ERROR"
	KindUnauthenticated Kind = "UNAUTHENTICATED_ERROR"
	KindConflict        Kind = "CONFLICT_ERROR"
	KindPaymentGateway  Kind = "PAYMENT_GATEWAY_ERROR"
	KindTransaction     Kind = "TRANSACTION_ERROR"
)

// ErrorCode is a fine grained, machine checkable code.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDates  ErrorCode = "INVALID_DATES"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidRole   ErrorCode = "INVALID_ROLE"

	// Lookup errors
	ErrCodeBookingNotFound  ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodePaymentNotFound  ErrorCode = "PAYMENT_NOT_FOUND"
	ErrCodeServiceNotFound  ErrorCode = "SERVICE_NOT_FOUND"
	ErrCodeRatingNotFound   ErrorCode = "RATING_NOT_FOUND"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeRoomTypeNotFound ErrorCode = "ROOM_TYPE_NOT_FOUND"

	// Business conflicts
	ErrCodeRoomUnavailable    ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeBookingTerminal    ErrorCode = "BOOKING_TERMINAL"
	ErrCodeInvalidTransition  ErrorCode = "INVALID_TRANSITION"
	ErrCodeCancellationWindow ErrorCode = "CANCELLATION_WINDOW"
	ErrCodeDuplicatePayment   ErrorCode = "DUPLICATE_PAYMENT"
	ErrCodeDuplicateRating    ErrorCode = "DUPLICATE_RATING"
	ErrCodeDuplicate          ErrorCode = "DUPLICATE"
	ErrCodeInvalidOperation   ErrorCode = "INVALID_OPERATION"

	// Infrastructure
	ErrCodePaymentGateway ErrorCode = "PAYMENT_GATEWAY"
	ErrCodeDBError        ErrorCode = "DB_ERROR"
	ErrCodeUploadFailed   ErrorCode = "UPLOAD_FAILED"
)

// AppError is the error type every service returns.
type AppError struct {
	Kind    Kind
	Code    ErrorCode
	Message string
	Data    map[string]interface{}
	Err     error
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

// HTTPStatus maps the kind to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPaymentGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WithData attaches structured detail rendered next to the message.
func (e *AppError) WithData(key string, value interface{}) *AppError {
	if e.Data == nil {
		e.Data = make(map[string]interface{})
	}
	e.Data[key] = value
	return e
}

// NewAppError creates an AppError, deriving the kind from the code.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Kind:    kindOf(code),
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

func NotFound(code ErrorCode, message string) *AppError {
	return NewAppError(code, message, nil)
}

func Forbidden(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, nil)
}

func Conflict(code ErrorCode, message string) *AppError {
	return NewAppError(code, message, nil)
}

func Gateway(message string, err error) *AppError {
	return NewAppError(ErrCodePaymentGateway, message, err)
}

// Transaction wraps an unexpected failure that happened during an atomic write.
// AppErrors pass through untouched.
func Transaction(message string, err error) error {
	if err == nil {
		return nil
	}
	if IsAppError(err) {
		return err
	}
	return NewAppError(ErrCodeDBError, message, err)
}

// IsAppError reports whether err is, or wraps, an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// KindOf returns the kind of err, or "" when it is not an AppError.
func KindOf(err error) Kind {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind
	}
	return ""
}

func kindOf(code ErrorCode) Kind {
	switch code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat, ErrCodeInvalidDates,
		ErrCodeInvalidAmount, ErrCodeInvalidRole:
		return KindValidation
	case ErrCodeBookingNotFound, ErrCodeRoomNotFound, ErrCodePaymentNotFound, ErrCodeServiceNotFound,
		ErrCodeRatingNotFound, ErrCodeUserNotFound, ErrCodeRoomTypeNotFound:
		return KindNotFound
	case ErrCodeForbidden:
		return KindAuthorization
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken:
		return KindUnauthenticated
	case ErrCodeRoomUnavailable, ErrCodeBookingTerminal, ErrCodeInvalidTransition, ErrCodeCancellationWindow,
		ErrCodeDuplicatePayment, ErrCodeDuplicateRating, ErrCodeDuplicate, ErrCodeInvalidOperation:
		return KindConflict
	case ErrCodePaymentGateway:
		return KindPaymentGateway
	default:
		return KindTransaction
	}
}

// ErrGatewayMissing is wrapped when a card charge has no gateway to go to.
var ErrGatewayMissing = errors.New("payment gateway not configured")
