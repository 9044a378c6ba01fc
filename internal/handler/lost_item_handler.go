package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/middleware"
	"campus-lostfound/internal/service"
)

type LostItemHandler struct {
	lostItemService service.LostItemService
}

func NewLostItemHandler(lostItemService service.LostItemService) *LostItemHandler {
	return &LostItemHandler{lostItemService: lostItemService}
}

func (h *LostItemHandler) Report(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.ReportLostItemInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	item, err := h.lostItemService.Report(c.Context(), user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *LostItemHandler) Get(c *fiber.Ctx) error {
	caseNumber := c.Params("caseNumber")

	item, err := h.lostItemService.GetByCaseNumber(c.Context(), caseNumber)
	if err != nil {
		return err
	}

	// Students only see their own reports; staff see everything.
	user := middleware.GetCurrentUser(c)
	if user != nil && !user.HasRole("staff") && item.UserID != user.ID {
		return middleware.Forbidden("Not your report")
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *LostItemHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	params := getPaginationParams(c)

	result, err := h.lostItemService.ListMine(c.Context(), user.ID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *LostItemHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.LostItemStatus
	if s := c.Query("status"); s != "" {
		parsed := domain.LostItemStatus(s)
		if !parsed.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		status = &parsed
	}

	result, err := h.lostItemService.List(c.Context(), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *LostItemHandler) MarkUnclaimed(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	caseNumber := c.Params("caseNumber")

	if err := h.lostItemService.MarkUnclaimed(c.Context(), user.ID, caseNumber); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"case_number": caseNumber,
		"status":      domain.LostStatusUnclaimed,
	})
}

func (h *LostItemHandler) Archive(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	caseNumber := c.Params("caseNumber")

	var input struct {
		Disposition domain.Disposition `json:"disposition"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	archive, err := h.lostItemService.Archive(c.Context(), user.ID, caseNumber, input.Disposition)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(archive)
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
