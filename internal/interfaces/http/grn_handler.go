package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// GRNHandler maneja las notas de entrada de mercancía (protegido: Admin, Staff).
type GRNHandler struct {
	uc      *usecase.GRNUseCase
	auditUC *audit.AuditUseCase
}

// NewGRNHandler construye el handler.
func NewGRNHandler(uc *usecase.GRNUseCase, auditUC *audit.AuditUseCase) *GRNHandler {
	return &GRNHandler{uc: uc, auditUC: auditUC}
}

// Create godoc
// @Summary      Crear nota de entrada
// @Tags         grn
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGRNRequest  true  "Datos de la nota"
// @Success      201   {object}  dto.GRNResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/grn [post]
func (h *GRNHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGRNRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in, GetUserName(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidades y costos deben ser válidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.record(c, "create", "Nota de entrada "+out.Number+" creada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener nota de entrada por ID
// @Tags         grn
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.GRNResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/grn/{id} [get]
func (h *GRNHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota de entrada no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar notas de entrada
// @Tags         grn
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "draft | received | verified"
// @Param        supplier  query  string  false  "Filtro por proveedor"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.GRNListResponse
// @Router       /api/grn [get]
func (h *GRNHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.GRNFilter{
		Status:   c.Query("status"),
		Supplier: c.Query("supplier"),
		From:     queryTime(c, "from"),
		To:       queryTime(c, "to"),
	}
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar el estado de una nota de entrada
// @Tags         grn
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la nota"
// @Param        body  body  dto.UpdateGRNStatusRequest  true  "Estado destino"
// @Success      200   {object}  dto.GRNResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/grn/{id}/status [patch]
func (h *GRNHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateGRNStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status, GetUserName(c))
	if err != nil {
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota de entrada no encontrada"})
	}
	h.record(c, "update", "Nota de entrada "+out.Number+" → "+out.Status)
	return c.JSON(out)
}

func (h *GRNHandler) record(c *fiber.Ctx, action, details string) {
	role, _ := GetRole(c)
	_ = h.auditUC.Record(audit.Entry{
		User:         GetUserName(c),
		Role:         role,
		Action:       action,
		Module:       "grn",
		ResourceType: "grn",
		Details:      details,
		IPAddress:    c.IP(),
	})
}

// pageParams extrae limit/offset con los mismos topes en todos los listados.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// queryTime parsea un query param de fecha en RFC 3339 o yyyy-mm-dd.
// Devuelve el zero value si falta o no parsea.
func queryTime(c *fiber.Ctx, key string) time.Time {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}
