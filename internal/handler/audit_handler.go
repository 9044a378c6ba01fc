package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-lostfound/internal/service"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) ListRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	logs, err := h.auditService.ListRecent(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(logs)
}
