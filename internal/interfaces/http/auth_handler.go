package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/auth"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// AuthHandler maneja login demo, logout, sesión y la tabla de cuentas demo.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	auditUC *audit.AuditUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, auditUC *audit.AuditUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, auditUC: auditUC}
}

// Login godoc
// @Summary      Iniciar sesión con una cuenta demo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if err == domain.ErrUnauthorized {
			_ = h.auditUC.Record(audit.Entry{
				User:      in.Email,
				Action:    "login",
				Module:    "auth",
				Details:   "Credenciales inválidas",
				Status:    entity.AuditStatusFailure,
				Severity:  entity.AuditSeverityWarning,
				IPAddress: c.IP(),
			})
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	_ = h.auditUC.Record(audit.Entry{
		User:      out.User.Name,
		Role:      entity.Role(out.User.Role),
		Action:    "login",
		Module:    "auth",
		Details:   "Inicio de sesión",
		IPAddress: c.IP(),
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	role, _ := GetRole(c)
	h.uc.Logout()
	_ = h.auditUC.Record(audit.Entry{
		User:      GetUserName(c),
		Role:      role,
		Action:    "logout",
		Module:    "auth",
		Details:   "Cierre de sesión",
		IPAddress: c.IP(),
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// DemoAccounts godoc
// @Summary      Listar cuentas demo para pre-llenar el formulario de login
// @Tags         auth
// @Produce      json
// @Success      200  {array}  dto.DemoAccountResponse
// @Router       /api/auth/demo-accounts [get]
func (h *AuthHandler) DemoAccounts(c *fiber.Ctx) error {
	return c.JSON(h.uc.DemoAccounts())
}

// Session godoc
// @Summary      Estado actual de sesión y navegación
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.uc.Session())
}
