package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/usecase"
)

// HistorialHandler maneja las consultas sobre el historial de estados.
type HistorialHandler struct {
	uc *usecase.HistorialUseCase
}

// NewHistorialHandler construye el handler.
func NewHistorialHandler(uc *usecase.HistorialUseCase) *HistorialHandler {
	return &HistorialHandler{uc: uc}
}

// List godoc
// @Summary      Listar historial de estados
// @Tags         historial
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HistorialResponse
// @Router       /api/historial [get]
func (h *HistorialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro del historial por ID
// @Tags         historial
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      200  {object}  dto.HistorialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historial/{id} [get]
func (h *HistorialHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByPedido godoc
// @Summary      Listar cambios de estado de un pedido
// @Tags         historial
// @Security     Bearer
// @Produce      json
// @Param        idPedido  path  int  true  "ID del pedido"
// @Success      200  {array}  dto.HistorialResponse
// @Router       /api/historial/pedido/{idPedido} [get]
func (h *HistorialHandler) ListByPedido(c *fiber.Ctx) error {
	idPedido, err := parseID(c, "idPedido")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByPedido(c.UserContext(), idPedido)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UltimoByPedido godoc
// @Summary      Último cambio de estado de un pedido
// @Tags         historial
// @Security     Bearer
// @Produce      json
// @Param        idPedido  path  int  true  "ID del pedido"
// @Success      200  {object}  dto.HistorialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historial/pedido/{idPedido}/ultimo [get]
func (h *HistorialHandler) UltimoByPedido(c *fiber.Ctx) error {
	idPedido, err := parseID(c, "idPedido")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UltimoByPedido(c.UserContext(), idPedido)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByEstado godoc
// @Summary      Listar cambios hacia un estado
// @Tags         historial
// @Security     Bearer
// @Produce      json
// @Param        estado  path  string  true  "Estado"
// @Success      200     {array}  dto.HistorialResponse
// @Router       /api/historial/estado/{estado} [get]
func (h *HistorialHandler) ListByEstado(c *fiber.Ctx) error {
	out, err := h.uc.ListByEstado(c.UserContext(), c.Params("estado"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCliente godoc
// @Summary      Listar cambios originados por un cliente
// @Tags         historial
// @Security     Bearer
// @Produce      json
// @Param        idCliente  path  int  true  "ID del cliente"
// @Success      200  {array}  dto.HistorialResponse
// @Router       /api/historial/cliente/{idCliente} [get]
func (h *HistorialHandler) ListByCliente(c *fiber.Ctx) error {
	idCliente, err := parseID(c, "idCliente")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByCliente(c.UserContext(), idCliente)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro del historial
// @Tags         historial
// @Security     Bearer
// @Param        id  path  int  true  "ID del registro"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historial/{id} [delete]
func (h *HistorialHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetConBloqueo godoc
// @Summary      Obtener registro con bloqueo exclusivo de fila
// @Tags         historial
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      200  {object}  dto.HistorialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historial/{id}/lock [get]
func (h *HistorialHandler) GetConBloqueo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetConBloqueo(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
