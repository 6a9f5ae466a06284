package handler

import (
	"errors"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/Marianaberrio/TendenciasBackend/internal/auth/dto"
	"github.com/Marianaberrio/TendenciasBackend/internal/auth/service"
	autherror "github.com/Marianaberrio/TendenciasBackend/internal/errors"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *service.SessionManager
	adminSecret string
}

func NewAuthHandler(authService *service.AuthService, sessions *service.SessionManager, adminSecret string) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, adminSecret: adminSecret}
}

// fail maps an auth failure to its coarse HTTP response. Only the sentinel
// message ever leaves the service; store and crypto details stay inside.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnauthorized

	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrMFAChallengeInvalid),
		errors.Is(err, autherror.ErrMFACodeInvalid),
		errors.Is(err, autherror.ErrRefreshInvalid),
		errors.Is(err, autherror.ErrVerifyFailed),
		errors.Is(err, autherror.ErrTokenMalformed),
		errors.Is(err, autherror.ErrTokenBadSignature),
		errors.Is(err, autherror.ErrTokenExpired):
	case errors.Is(err, autherror.ErrAccountLocked):
		status = fiber.StatusLocked
	case errors.Is(err, autherror.ErrMFANotEnabled),
		errors.Is(err, autherror.ErrUsernameTaken):
		status = fiber.StatusConflict
	case errors.Is(err, autherror.ErrMFANotConfigured),
		errors.Is(err, autherror.ErrResetTokenInvalid):
		status = fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrAccountNotFound):
		status = fiber.StatusNotFound
	default:
		sentry.CaptureException(err)
		log.Printf("internal error: %v", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing fields"})
	}

	acc, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       acc.ID,
		"username": acc.Username,
		"email":    acc.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing fields"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuthHandler) VerifyMFA(c *fiber.Ctx) error {
	var input dto.MFAVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.LoginChallenge == "" || input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing fields"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	pair, err := h.authService.VerifyMFA(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing refresh token"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	pair, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(pair)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if input.RefreshToken != "" {
		if err := h.authService.Logout(c.Context(), input.RefreshToken); err != nil {
			return fail(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	if err := h.authService.LogoutAll(c.Context(), accountID(c)); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.authService.Me(c.Context(), accountID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Sessions(c *fiber.Ctx) error {
	out, err := h.authService.Sessions(c.Context(), accountID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) RevokeSession(c *fiber.Ctx) error {
	if err := h.authService.RevokeSession(c.Context(), c.Params("id"), accountID(c)); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) SetupMFA(c *fiber.Ctx) error {
	out, err := h.authService.SetupMFA(c.Context(), accountID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) EnableMFA(c *fiber.Ctx) error {
	var input dto.MFAEnableInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing code"})
	}

	codes, err := h.authService.EnableMFA(c.Context(), accountID(c), input.Code)
	if err != nil {
		return fail(c, err)
	}

	// Recovery codes are visible in this response only.
	return c.Status(fiber.StatusOK).JSON(dto.MFAEnableOutput{OK: true, RecoveryCodes: codes})
}

func (h *AuthHandler) DisableMFA(c *fiber.Ctx) error {
	var input dto.MFADisableInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Password == "" && input.Code == "" && input.RecoveryCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing verification"})
	}

	if err := h.authService.DisableMFA(c.Context(), accountID(c), input); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing username"})
	}

	// TODO: deliver the token by email instead of returning it once SMTP
	// credentials are provisioned.
	out, err := h.authService.RequestPasswordReset(c.Context(), input.Username)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Username == "" || input.ResetToken == "" || input.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing fields"})
	}

	if err := h.authService.ResetPassword(c.Context(), input); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.authService.DeleteAccount(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}
