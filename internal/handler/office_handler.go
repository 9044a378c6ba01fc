package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/middleware"
	"campus-lostfound/internal/service"
)

type OfficeHandler struct {
	officeService service.OfficeService
}

func NewOfficeHandler(officeService service.OfficeService) *OfficeHandler {
	return &OfficeHandler{officeService: officeService}
}

func (h *OfficeHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateOfficeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	office, err := h.officeService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(office)
}

func (h *OfficeHandler) Get(c *fiber.Ctx) error {
	office, err := h.officeService.GetByID(c.Context(), c.Params("officeId"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(office)
}

func (h *OfficeHandler) List(c *fiber.Ctx) error {
	offices, err := h.officeService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(offices)
}
