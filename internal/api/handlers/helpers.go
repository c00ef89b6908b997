package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/api/middleware"
)

// GetUserID reads the authenticated caller's id set by the auth middleware.
func GetUserID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals(middleware.UserIDKey).(string)
	id, _ := uuid.Parse(raw)
	return id
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrDuplicateEmail), errors.Is(err, apperr.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrAccountNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "something went wrong"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseTimeQuery accepts RFC 3339 timestamps and bare dates.
func parseTimeQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errors.New("invalid time format, expected RFC 3339 or YYYY-MM-DD")
}

// parseAccountQuery returns the optional socialAccountId filter.
func parseAccountQuery(c *fiber.Ctx) (*uuid.UUID, error) {
	raw := c.Query("socialAccountId")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("invalid socialAccountId")
	}
	return &id, nil
}
