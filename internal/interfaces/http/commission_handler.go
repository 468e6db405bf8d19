package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/terralote-api/internal/application/usecase"
)

// CommissionHandler consulta y ciclo de vida de comisiones.
type CommissionHandler struct {
	uc *usecase.CommissionUseCase
}

// NewCommissionHandler construye el handler.
func NewCommissionHandler(uc *usecase.CommissionUseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// List godoc
// @Summary      Listar comisiones con alcance por rol
// @Tags         commissions
// @Produce      json
// @Param        status  query  string  false  "pending|approved|paid|cancelled"
// @Success      200  {object}  dto.CommissionListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/commissions [get]
func (h *CommissionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetPrincipal(c), c.Query("status"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener comisión
// @Tags         commissions
// @Produce      json
// @Param        id  path  string  true  "ID de la comisión"
// @Success      200  {object}  dto.CommissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/commissions/{id} [get]
func (h *CommissionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar comisión (pending → approved)
// @Tags         commissions
// @Produce      json
// @Param        id  path  string  true  "ID de la comisión"
// @Success      200  {object}  dto.CommissionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/commissions/{id}/approve [post]
func (h *CommissionHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Marcar comisión como pagada (approved → paid)
// @Tags         commissions
// @Produce      json
// @Param        id  path  string  true  "ID de la comisión"
// @Success      200  {object}  dto.CommissionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/commissions/{id}/pay [post]
func (h *CommissionHandler) Pay(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar comisión
// @Tags         commissions
// @Produce      json
// @Param        id  path  string  true  "ID de la comisión"
// @Success      200  {object}  dto.CommissionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/commissions/{id}/cancel [post]
func (h *CommissionHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
