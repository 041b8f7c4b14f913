// FILE: internal/pkg/serverutils/errors.go
package serverutils

// AppError is an error with an HTTP status attached. Services return these
// for client-caused failures; anything else is treated as a 500 by the
// error handler middleware.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}
