// Package errors defines the application error taxonomy for the reminder engine.
package errors

import (
	"net/http"

	"rentora/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Phone normalization errors
	ErrInvalidPhoneNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE_NUMBER",
		"El número de teléfono no es válido",
		"",
	)

	// Provider resolution errors
	ErrNoProviderConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"NO_PROVIDER_CONFIGURED",
		"No hay proveedor de mensajería configurado para este canal",
		"",
	)

	ErrChannelNotSupported = NewBaseError(
		http.StatusBadRequest,
		"CHANNEL_NOT_SUPPORTED",
		"El proveedor no soporta este canal",
		"",
	)

	// Dispatch errors
	ErrProviderSendFailed = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_SEND_FAILED",
		"El envío del mensaje falló",
		"",
	)

	ErrNotificationTerminal = NewBaseError(
		http.StatusConflict,
		"NOTIFICATION_TERMINAL",
		"La notificación ya alcanzó un estado final",
		"",
	)

	// Quota errors
	ErrQuotaExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"QUOTA_EXCEEDED",
		"Se alcanzó el límite mensual de notificaciones",
		"",
	)

	// Organization / configuration errors
	ErrOrganizationNotFound = NewBaseError(
		http.StatusNotFound,
		"ORGANIZATION_NOT_FOUND",
		"No se encontró la organización",
		"",
	)

	ErrNotificationsDisabled = NewBaseError(
		http.StatusConflict,
		"NOTIFICATIONS_DISABLED",
		"Las notificaciones están deshabilitadas para esta organización",
		"",
	)

	ErrPlanNotConfigured = NewBaseError(
		http.StatusConflict,
		"PLAN_NOT_CONFIGURED",
		"La organización no tiene un plan de suscripción configurado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"La validación de los datos de entrada falló",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "La ejecución en la base de datos falló"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
