package service

import (
	"github.com/gofiber/fiber/v2"

	"namedeck/internal/pkg/serverutils"
)

var (
	// ErrNotReady rejects directory queries before the session reaches the
	// ready state.
	ErrNotReady = serverutils.NewAppError(fiber.StatusBadRequest, "Client not ready")
	// ErrNotAGroup rejects participant queries for ids that resolve to a
	// non-group chat.
	ErrNotAGroup = serverutils.NewAppError(fiber.StatusBadRequest, "Not a group chat")
	// ErrNoQR means no pairing code is currently outstanding.
	ErrNoQR = serverutils.NewAppError(fiber.StatusNotFound, "No QR code pending")
)
