package apperror

import "net/http"

// AppError pairs an HTTP status with a client-safe message. The wrapped Err
// is logged server-side only.
type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Fields  interface{} `json:"fields,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation builds a 400 carrying per-field messages for the client.
func Validation(message string, fields map[string]string) *AppError {
	e := BadRequest(message)
	e.Fields = fields
	return e
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

func ServiceUnavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
