package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/service"
	"github.com/socialdeck/management-api/internal/transfer"
)

type AccountHandler struct {
	s service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{s: service}
}

func (h *AccountHandler) Connect(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.ConnectAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	account, err := h.s.Connect(c.Context(), userID, &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accounts, err := h.s.List(c.Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *AccountHandler) Disconnect(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accountID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, apperr.ErrNotFound)
	}

	if err := h.s.Disconnect(c.Context(), userID, accountID); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
