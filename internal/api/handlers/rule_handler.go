package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/service"
	"github.com/socialdeck/management-api/internal/transfer"
)

type RuleHandler struct {
	s service.RuleService
}

func NewRuleHandler(service service.RuleService) *RuleHandler {
	return &RuleHandler{s: service}
}

func (h *RuleHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.AutomationRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	rule, err := h.s.Create(c.Context(), userID, &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

func (h *RuleHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	rules, err := h.s.List(c.Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rules)
}

func (h *RuleHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, apperr.ErrNotFound)
	}

	var req transfer.AutomationRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	rule, err := h.s.Update(c.Context(), userID, ruleID, &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rule)
}

func (h *RuleHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, apperr.ErrNotFound)
	}

	if err := h.s.Delete(c.Context(), userID, ruleID); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RuleHandler) Toggle(c *fiber.Ctx) error {
	userID := GetUserID(c)

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, apperr.ErrNotFound)
	}

	enabled, err := strconv.ParseBool(c.Query("enabled"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "enabled query parameter is required and must be a boolean",
		})
	}

	if err := h.s.Toggle(c.Context(), userID, ruleID, enabled); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
