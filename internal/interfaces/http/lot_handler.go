package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/application/usecase"
)

// LotHandler CRUD de lotes y transiciones reservar/vender/liberar.
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote
// @Tags         lots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "project_id, number, area, price"
// @Success      201  {object}  dto.LotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProjectID == "" || in.Number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "project_id y number son requeridos"})
	}
	lot, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lot)
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         lots
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	lot, err := h.uc.GetByID(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(lot)
}

// List godoc
// @Summary      Listar lotes con alcance por rol
// @Tags         lots
// @Produce      json
// @Param        project_id  query  string  false  "filtrar por proyecto"
// @Success      200  {object}  dto.LotListResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetPrincipal(c), c.Query("project_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Reserve godoc
// @Summary      Reservar lote (available → reserved)
// @Tags         lots
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del lote"
// @Param        body  body  dto.ReserveLotRequest true  "client_id, financing, commission_rate"
// @Success      200  {object}  dto.LotResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/reserve [post]
func (h *LotHandler) Reserve(c *fiber.Ctx) error {
	var in dto.ReserveLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id es requerido"})
	}
	lot, err := h.uc.Reserve(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(lot)
}

// Sell godoc
// @Summary      Vender lote (reserved → sold)
// @Tags         lots
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del lote"
// @Param        body  body  dto.SellLotRequest true  "commission_rate"
// @Success      200  {object}  dto.LotResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/sell [post]
func (h *LotHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.uc.Sell(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(lot)
}

// Release godoc
// @Summary      Liberar reserva (reserved → available)
// @Tags         lots
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/release [post]
func (h *LotHandler) Release(c *fiber.Ctx) error {
	lot, err := h.uc.Release(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(lot)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         lots
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [delete]
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
