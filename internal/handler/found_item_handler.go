package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/middleware"
	"campus-lostfound/internal/service"
)

type FoundItemHandler struct {
	foundItemService service.FoundItemService
	matchService     service.MatchService
}

func NewFoundItemHandler(foundItemService service.FoundItemService, matchService service.MatchService) *FoundItemHandler {
	return &FoundItemHandler{
		foundItemService: foundItemService,
		matchService:     matchService,
	}
}

func (h *FoundItemHandler) Log(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.LogFoundItemInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.foundItemService.Log(c.Context(), user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *FoundItemHandler) Get(c *fiber.Ctx) error {
	id := c.Params("foundItemId")

	item, err := h.foundItemService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *FoundItemHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.FoundItemStatus
	if s := c.Query("status"); s != "" {
		parsed := domain.FoundItemStatus(s)
		if !parsed.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		status = &parsed
	}

	result, err := h.foundItemService.List(c.Context(), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *FoundItemHandler) ListMatches(c *fiber.Ctx) error {
	id := c.Params("foundItemId")

	matches, err := h.matchService.ListByFoundItem(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(matches)
}

func (h *FoundItemHandler) Archive(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	id := c.Params("foundItemId")

	if err := h.foundItemService.Archive(c.Context(), user.ID, id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"found_item_id": id,
		"status":        domain.FoundStatusArchived,
	})
}
