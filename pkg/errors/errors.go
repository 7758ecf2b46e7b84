package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Общие
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
	ErrStorage    = fmt.Errorf("storage error")
	ErrInternal   = fmt.Errorf("internal server error")
)

// ValidationError: входные данные клиента не прошли бизнес-правило. Возникает до обращения к БД.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrBadRequest }

func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError: ни одна строка не совпала с id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// StorageError оборачивает любую ошибку уровня БД: соединение, constraint, запрос.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// HttpError: то, что уходит клиенту. Err хранит исходную причину только для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

// ToHttpError переводит ошибку доменного уровня в код и сообщение ответа.
// Детали ошибок БД наружу не попадают.
func ToHttpError(err error) *HttpError {
	var (
		httpErr       *HttpError
		validationErr *ValidationError
		notFoundErr   *NotFoundError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &validationErr):
		return NewHttpError(http.StatusBadRequest, validationErr.Message, err)
	case errors.As(err, &notFoundErr):
		return NewHttpError(http.StatusNotFound, notFoundErr.Message, err)
	case errors.Is(err, ErrNotFound):
		return NewHttpError(http.StatusNotFound, "Not found", err)
	case errors.Is(err, ErrBadRequest):
		return NewHttpError(http.StatusBadRequest, "Bad request", err)
	case errors.Is(err, ErrStorage):
		return NewHttpError(http.StatusInternalServerError, "Database error", err)
	default:
		return NewHttpError(http.StatusInternalServerError, "Internal server error", err)
	}
}
