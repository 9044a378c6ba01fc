package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-lostfound/internal/domain"
	"campus-lostfound/internal/middleware"
	"campus-lostfound/internal/service"
)

type MatchHandler struct {
	matchService service.MatchService
}

func NewMatchHandler(matchService service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.MatchStatus
	if s := c.Query("status"); s != "" {
		parsed := domain.MatchStatus(s)
		if !parsed.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		status = &parsed
	}

	result, err := h.matchService.List(c.Context(), status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *MatchHandler) Get(c *fiber.Ctx) error {
	matchID, err := uuid.Parse(c.Params("matchId"))
	if err != nil {
		return middleware.BadRequest("Invalid match ID")
	}

	match, err := h.matchService.GetByID(c.Context(), matchID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(match)
}

func (h *MatchHandler) Confirm(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	matchID, err := uuid.Parse(c.Params("matchId"))
	if err != nil {
		return middleware.BadRequest("Invalid match ID")
	}

	match, err := h.matchService.Confirm(c.Context(), user.ID, matchID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(match)
}

func (h *MatchHandler) Reject(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	matchID, err := uuid.Parse(c.Params("matchId"))
	if err != nil {
		return middleware.BadRequest("Invalid match ID")
	}

	match, err := h.matchService.Reject(c.Context(), user.ID, matchID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(match)
}

func (h *MatchHandler) Claim(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	matchID, err := uuid.Parse(c.Params("matchId"))
	if err != nil {
		return middleware.BadRequest("Invalid match ID")
	}

	match, err := h.matchService.Claim(c.Context(), user.ID, matchID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(match)
}

func (h *MatchHandler) Remind(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	matchID, err := uuid.Parse(c.Params("matchId"))
	if err != nil {
		return middleware.BadRequest("Invalid match ID")
	}

	notif, err := h.matchService.Remind(c.Context(), user.ID, matchID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(notif)
}
