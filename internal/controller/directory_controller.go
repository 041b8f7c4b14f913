package controller

import (
	"namedeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDirectoryController interface {
	RegisterRoutes(r fiber.Router)
	ListGroups(ctx *fiber.Ctx) error
	ListParticipants(ctx *fiber.Ctx) error
}

type directoryController struct {
	service service.IDirectoryService
}

func NewDirectoryController(service service.IDirectoryService) IDirectoryController {
	return &directoryController{service: service}
}

func (c *directoryController) RegisterRoutes(r fiber.Router) {
	r.Get("/groups", c.ListGroups)
	r.Get("/group/:groupId/participants", c.ListParticipants)
}

func (c *directoryController) ListGroups(ctx *fiber.Ctx) error {
	groups, err := c.service.ListGroups(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(groups)
}

func (c *directoryController) ListParticipants(ctx *fiber.Ctx) error {
	groupId := ctx.Params("groupId")
	participants, err := c.service.ListParticipants(ctx.Context(), groupId)
	if err != nil {
		return err
	}
	return ctx.JSON(participants)
}
