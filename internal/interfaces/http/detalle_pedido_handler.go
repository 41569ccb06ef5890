package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/application/usecase"
)

// DetallePedidoHandler maneja las peticiones HTTP para las líneas de pedido.
type DetallePedidoHandler struct {
	uc *usecase.DetallePedidoUseCase
}

// NewDetallePedidoHandler construye el handler.
func NewDetallePedidoHandler(uc *usecase.DetallePedidoUseCase) *DetallePedidoHandler {
	return &DetallePedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar línea a un pedido
// @Tags         detalles-pedido
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDetallePedidoRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.DetallePedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/detalles-pedido [post]
func (h *DetallePedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDetallePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDPedido <= 0 || in.IDProducto <= 0 || in.Cantidad <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_pedido, id_producto y cantidad son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar líneas de pedido
// @Tags         detalles-pedido
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DetallePedidoResponse
// @Router       /api/detalles-pedido [get]
func (h *DetallePedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByPedido godoc
// @Summary      Listar líneas de un pedido
// @Tags         detalles-pedido
// @Security     Bearer
// @Produce      json
// @Param        idPedido  path  int  true  "ID del pedido"
// @Success      200  {array}  dto.DetallePedidoResponse
// @Router       /api/detalles-pedido/pedido/{idPedido} [get]
func (h *DetallePedidoHandler) ListByPedido(c *fiber.Ctx) error {
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

// ListByProducto godoc
// @Summary      Listar líneas que referencian un producto
// @Tags         detalles-pedido
// @Security     Bearer
// @Produce      json
// @Param        idProducto  path  int  true  "ID del producto"
// @Success      200  {array}  dto.DetallePedidoResponse
// @Router       /api/detalles-pedido/producto/{idProducto} [get]
func (h *DetallePedidoHandler) ListByProducto(c *fiber.Ctx) error {
	idProducto, err := parseID(c, "idProducto")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByProducto(c.UserContext(), idProducto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListConInstrucciones godoc
// @Summary      Listar líneas con instrucciones especiales
// @Tags         detalles-pedido
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DetallePedidoResponse
// @Router       /api/detalles-pedido/con-instrucciones [get]
func (h *DetallePedidoHandler) ListConInstrucciones(c *fiber.Ctx) error {
	out, err := h.uc.ListConInstrucciones(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea por ID
// @Tags         detalles-pedido
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.DetallePedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/detalles-pedido/{id} [get]
func (h *DetallePedidoHandler) GetByID(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar línea
// @Tags         detalles-pedido
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la línea"
// @Param        body  body  dto.UpdateDetallePedidoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DetallePedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/detalles-pedido/{id} [put]
func (h *DetallePedidoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateDetallePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar línea
// @Tags         detalles-pedido
// @Security     Bearer
// @Param        id  path  int  true  "ID de la línea"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/detalles-pedido/{id} [delete]
func (h *DetallePedidoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteByPedido godoc
// @Summary      Eliminar todas las líneas de un pedido
// @Tags         detalles-pedido
// @Security     Bearer
// @Param        idPedido  path  int  true  "ID del pedido"
// @Success      204  "Sin contenido"
// @Router       /api/detalles-pedido/pedido/{idPedido} [delete]
func (h *DetallePedidoHandler) DeleteByPedido(c *fiber.Ctx) error {
	idPedido, err := parseID(c, "idPedido")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteByPedido(c.UserContext(), idPedido); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetConBloqueo godoc
// @Summary      Obtener línea con bloqueo exclusivo de fila
// @Tags         detalles-pedido
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.DetallePedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/detalles-pedido/{id}/lock [get]
func (h *DetallePedidoHandler) GetConBloqueo(c *fiber.Ctx) error {
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
