package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	config "github.com/socialdeck/management-api/configs"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/pkg/utils"
)

// UserIDKey is the fiber Locals key handlers read the caller id from.
const UserIDKey = "user_id"

type AuthMiddleware struct {
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth validates the bearer token and stores the caller's user id in
// Locals. Claims are normalized first: a token that only carries the subject
// claim gets its name-identifier claim synthesized from it, so every handler
// downstream reads one canonical claim. Normalization is idempotent and runs
// before any ownership check.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": apperr.ErrInvalidToken.Error(),
			})
		}

		claims, err := utils.ValidateToken(m.cfg, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": apperr.ErrInvalidToken.Error(),
			})
		}

		claims.NormalizeNameID()
		if claims.NameID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": apperr.ErrInvalidToken.Error(),
			})
		}

		c.Locals(UserIDKey, claims.NameID)
		return c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
