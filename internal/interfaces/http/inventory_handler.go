package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// InventoryHandler maneja el inventario (protegido: Admin, Staff, Vet).
type InventoryHandler struct {
	uc      *usecase.InventoryUseCase
	auditUC *audit.AuditUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, auditUC *audit.AuditUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, auditUC: auditUC}
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el SKU ya existe"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock, nivel de reorden y precio no pueden ser negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.record(c, "create", "Ítem "+out.SKU+" creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ítems de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        category   query  string  false  "Filtro por categoría"
// @Param        search     query  string  false  "Busca en nombre y SKU"
// @Param        low_stock  query  bool    false  "Solo ítems en nivel de reorden"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.InventoryFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		LowStock: c.QueryBool("low_stock", false),
	}
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar stock de un ítem
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta y motivo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.AdjustStock(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta no puede ser cero"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el stock no puede quedar negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	}
	h.record(c, "update", "Stock de "+out.SKU+" ajustado: "+in.Reason)
	return c.JSON(out)
}

// Expiring godoc
// @Summary      Ítems que vencen dentro de 90 días
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/inventory/expiring [get]
func (h *InventoryHandler) Expiring(c *fiber.Ctx) error {
	out, err := h.uc.ExpiringSoon()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *InventoryHandler) record(c *fiber.Ctx, action, details string) {
	role, _ := GetRole(c)
	_ = h.auditUC.Record(audit.Entry{
		User:         GetUserName(c),
		Role:         role,
		Action:       action,
		Module:       "inventory",
		ResourceType: "inventory_item",
		Details:      details,
		IPAddress:    c.IP(),
	})
}
