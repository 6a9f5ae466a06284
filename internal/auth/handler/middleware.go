package handler

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Marianaberrio/TendenciasBackend/internal/auth/token"
)

const claimsKey = "claims"

// RequireAuth validates the Bearer access token and stashes its claims on
// the request context.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	raw := bearerToken(c)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	claims, err := h.sessions.VerifyAccess(raw)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token invalid"})
	}

	c.Locals(claimsKey, claims)

	return c.Next()
}

// RequireAdmin guards the registration and account-deletion routes with
// the configured admin secret.
func (h *AuthHandler) RequireAdmin(c *fiber.Ctx) error {
	got := c.Get("X-Admin-Secret")
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.adminSecret)) != 1 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}

	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func accountID(c *fiber.Ctx) string {
	claims, ok := c.Locals(claimsKey).(*token.Claims)
	if !ok {
		return ""
	}
	return claims.Subject
}
