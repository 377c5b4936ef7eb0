package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeAPIError   = "API_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeCache      = "CACHE_ERROR"
	CodeDatabase   = "DATABASE_ERROR"
	CodeService    = "SERVICE_ERROR"
)

// BotError is the root of every typed error in the module. StatusCode is the
// HTTP status the web layer answers with.
type BotError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *BotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BotError) Unwrap() error {
	return e.Cause
}

func NewBotError(message, code string, statusCode int, context map[string]any) *BotError {
	return &BotError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

// Base exposes the embedded BotError of any specialised error.
func (e *BotError) Base() *BotError {
	return e
}

func (e *BotError) WithCause(cause error) *BotError {
	e.Cause = cause
	return e
}

type APIError struct {
	*BotError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		BotError: NewBotError(message, CodeAPIError, statusCode, context),
	}
}

// WithCause keeps the *APIError type through chaining.
func (e *APIError) WithCause(cause error) *APIError {
	e.Cause = cause
	return e
}

type ValidationError struct {
	*BotError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		BotError: NewBotError(message, CodeValidation, http.StatusBadRequest, map[string]any{
			"field": field,
			"value": value,
		}),
		Field: field,
		Value: value,
	}
}

type NotFoundError struct {
	*BotError
	Resource string
	Key      string
}

func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{
		BotError: NewBotError(fmt.Sprintf("%s %q not found", resource, key), CodeNotFound, http.StatusNotFound, map[string]any{
			"resource": resource,
			"key":      key,
		}),
		Resource: resource,
		Key:      key,
	}
}

type CacheError struct {
	*BotError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	e := &CacheError{
		BotError: NewBotError(message, CodeCache, http.StatusInternalServerError, map[string]any{
			"operation": operation,
			"key":       key,
		}),
		Operation: operation,
		Key:       key,
	}
	e.Cause = cause
	return e
}

type DatabaseError struct {
	*BotError
	Operation string
}

func NewDatabaseError(operation string, cause error) *DatabaseError {
	e := &DatabaseError{
		BotError: NewBotError(operation+" failed", CodeDatabase, http.StatusInternalServerError, map[string]any{
			"operation": operation,
		}),
		Operation: operation,
	}
	e.Cause = cause
	return e
}

type ServiceError struct {
	*BotError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	e := &ServiceError{
		BotError: NewBotError(message, CodeService, http.StatusServiceUnavailable, map[string]any{
			"service":   service,
			"operation": operation,
		}),
		Service:   service,
		Operation: operation,
	}
	e.Cause = cause
	return e
}

// StatusOf returns the HTTP status and code carried by err, falling back to
// 500/INTERNAL_ERROR for untyped errors.
func StatusOf(err error) (int, string) {
	var typed interface{ Base() *BotError }
	if stderrors.As(err, &typed) {
		if base := typed.Base(); base != nil && base.StatusCode != 0 {
			return base.StatusCode, base.Code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}
