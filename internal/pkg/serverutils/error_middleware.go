// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbled up from controllers into
// JSON responses. *AppError keeps its status code, fiber errors keep
// theirs, everything else becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(err.Error()))
	}
}
