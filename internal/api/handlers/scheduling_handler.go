package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/service"
	"github.com/socialdeck/management-api/internal/transfer"
)

type SchedulingHandler struct {
	s service.SchedulingService
}

func NewSchedulingHandler(service service.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{s: service}
}

func (h *SchedulingHandler) Schedule(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.SchedulePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	post, err := h.s.Schedule(c.Context(), userID, &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *SchedulingHandler) ListScheduled(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accountID, err := parseAccountQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	posts, err := h.s.ListScheduled(c.Context(), userID, accountID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *SchedulingHandler) Cancel(c *fiber.Ctx) error {
	userID := GetUserID(c)

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, apperr.ErrNotFound)
	}

	if err := h.s.Cancel(c.Context(), userID, postID); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SchedulingHandler) ListPublished(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accountID, err := parseAccountQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	posts, err := h.s.ListPublished(c.Context(), userID, accountID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}
