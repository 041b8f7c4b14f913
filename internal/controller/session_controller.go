package controller

import (
	"namedeck/internal/dto"
	"namedeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Initialize(ctx *fiber.Ctx) error
	QR(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Get("/status", c.Status)
	r.Post("/initialize", c.Initialize)
	r.Get("/qr", c.QR)
}

func (c *sessionController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Status())
}

func (c *sessionController) Initialize(ctx *fiber.Ctx) error {
	res, err := c.service.Initialize(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// QR lets a browser pull the pending pairing image instead of waiting for
// the push channel.
func (c *sessionController) QR(ctx *fiber.Ctx) error {
	qr, ok := c.service.CurrentQR()
	if !ok {
		return service.ErrNoQR
	}
	return ctx.JSON(dto.QRResponse{QR: qr})
}
