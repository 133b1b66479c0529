package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// DeliveryHandler maneja las notas de entrega (protegido: Admin, Staff).
type DeliveryHandler struct {
	uc      *usecase.DeliveryUseCase
	auditUC *audit.AuditUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase, auditUC *audit.AuditUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, auditUC: auditUC}
}

// Create godoc
// @Summary      Crear nota de entrega
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Datos de la nota"
// @Success      201   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/delivery [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidades y precios deben ser válidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.record(c, "create", "Nota de entrega "+out.Number+" creada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener nota de entrega por ID
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota de entrega no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar notas de entrega
// @Tags         delivery
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "pending | in_transit | delivered"
// @Param        customer  query  string  false  "Filtro por cliente"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.DeliveryListResponse
// @Router       /api/delivery [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.DeliveryFilter{
		Status:   c.Query("status"),
		Customer: c.Query("customer"),
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
// @Summary      Transicionar el estado de una nota de entrega
// @Tags         delivery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la nota"
// @Param        body  body  dto.UpdateDeliveryStatusRequest  true  "Estado destino"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/delivery/{id}/status [patch]
func (h *DeliveryHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryStatusRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota de entrega no encontrada"})
	}
	h.record(c, "update", "Nota de entrega "+out.Number+" → "+out.Status)
	return c.JSON(out)
}

func (h *DeliveryHandler) record(c *fiber.Ctx, action, details string) {
	role, _ := GetRole(c)
	_ = h.auditUC.Record(audit.Entry{
		User:         GetUserName(c),
		Role:         role,
		Action:       action,
		Module:       "delivery",
		ResourceType: "delivery_note",
		Details:      details,
		IPAddress:    c.IP(),
	})
}
