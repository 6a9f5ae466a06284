package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/auth")
	auth.Post("/register", h.RequireAdmin, h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/mfa/verify", h.VerifyMFA)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)
	auth.Post("/password/forgot", h.ForgotPassword)
	auth.Post("/password/reset", h.ResetPassword)

	auth.Get("/me", h.RequireAuth, h.Me)
	auth.Get("/sessions", h.RequireAuth, h.Sessions)
	auth.Delete("/sessions/:id", h.RequireAuth, h.RevokeSession)
	auth.Post("/logout-all", h.RequireAuth, h.LogoutAll)
	auth.Post("/mfa/setup", h.RequireAuth, h.SetupMFA)
	auth.Post("/mfa/enable", h.RequireAuth, h.EnableMFA)
	auth.Post("/mfa/disable", h.RequireAuth, h.DisableMFA)

	// Admin-only endpoints
	admin := app.Group("/admin", h.RequireAdmin)
	admin.Delete("/users/:id", h.DeleteAccount)
}
