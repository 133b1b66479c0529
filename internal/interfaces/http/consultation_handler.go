package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// ConsultationHandler maneja las consultas veterinarias (protegido: Admin, Vet).
type ConsultationHandler struct {
	uc      *usecase.ConsultationUseCase
	auditUC *audit.AuditUseCase
}

// NewConsultationHandler construye el handler.
func NewConsultationHandler(uc *usecase.ConsultationUseCase, auditUC *audit.AuditUseCase) *ConsultationHandler {
	return &ConsultationHandler{uc: uc, auditUC: auditUC}
}

// Create godoc
// @Summary      Agendar consulta veterinaria
// @Tags         consultations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsultationRequest  true  "Datos de la consulta"
// @Success      201   {object}  dto.ConsultationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consultations [post]
func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsultationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.record(c, "create", "Consulta "+out.Number+" agendada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener consulta por ID
// @Tags         consultations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la consulta"
// @Success      200  {object}  dto.ConsultationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultations/{id} [get]
func (h *ConsultationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar consultas
// @Tags         consultations
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "scheduled | completed | cancelled"
// @Param        vet     query  string  false  "Filtro por veterinario"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ConsultationListResponse
// @Router       /api/consultations [get]
func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.ConsultationFilter{
		Status: c.Query("status"),
		Vet:    c.Query("vet"),
		From:   queryTime(c, "from"),
		To:     queryTime(c, "to"),
	}
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Completar o cancelar una consulta
// @Tags         consultations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la consulta"
// @Param        body  body  dto.UpdateConsultationRequest  true  "Estado destino y resultado"
// @Success      200   {object}  dto.ConsultationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consultations/{id} [patch]
func (h *ConsultationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConsultationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserName(c))
	if err != nil {
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "solo una consulta agendada puede completarse o cancelarse"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
	}
	h.record(c, "update", "Consulta "+out.Number+" → "+out.Status)
	return c.JSON(out)
}

func (h *ConsultationHandler) record(c *fiber.Ctx, action, details string) {
	role, _ := GetRole(c)
	_ = h.auditUC.Record(audit.Entry{
		User:         GetUserName(c),
		Role:         role,
		Action:       action,
		Module:       "consultations",
		ResourceType: "consultation",
		Details:      details,
		IPAddress:    c.IP(),
	})
}
