package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/application/usecase"
)

// ValoracionHandler maneja las peticiones HTTP para valoraciones.
type ValoracionHandler struct {
	uc *usecase.ValoracionUseCase
}

// NewValoracionHandler construye el handler.
func NewValoracionHandler(uc *usecase.ValoracionUseCase) *ValoracionHandler {
	return &ValoracionHandler{uc: uc}
}

// Create godoc
// @Summary      Valorar un pedido
// @Tags         valoraciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateValoracionRequest  true  "Datos de la valoración"
// @Success      201   {object}  dto.ValoracionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/valoraciones [post]
func (h *ValoracionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateValoracionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDPedido <= 0 || in.IDCliente <= 0 || in.Puntuacion < 1 || in.Puntuacion > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_pedido, id_cliente y puntuación (1-5) son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar valoraciones
// @Tags         valoraciones
// @Produce      json
// @Success      200  {array}  dto.ValoracionResponse
// @Router       /api/valoraciones [get]
func (h *ValoracionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener valoración por ID
// @Tags         valoraciones
// @Produce      json
// @Param        id   path  int  true  "ID de la valoración"
// @Success      200  {object}  dto.ValoracionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/valoraciones/{id} [get]
func (h *ValoracionHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar valoraciones de un pedido
// @Tags         valoraciones
// @Security     Bearer
// @Produce      json
// @Param        idPedido  path  int  true  "ID del pedido"
// @Success      200  {array}  dto.ValoracionResponse
// @Router       /api/valoraciones/pedido/{idPedido} [get]
func (h *ValoracionHandler) ListByPedido(c *fiber.Ctx) error {
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

// PromedioByPedido godoc
// @Summary      Promedio de puntuaciones de un pedido
// @Tags         valoraciones
// @Produce      json
// @Param        idPedido  path  int  true  "ID del pedido"
// @Success      200  {object}  dto.PromedioResponse
// @Router       /api/valoraciones/pedido/{idPedido}/promedio [get]
func (h *ValoracionHandler) PromedioByPedido(c *fiber.Ctx) error {
	idPedido, err := parseID(c, "idPedido")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.PromedioByPedido(c.UserContext(), idPedido)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCliente godoc
// @Summary      Listar valoraciones emitidas por un cliente
// @Tags         valoraciones
// @Security     Bearer
// @Produce      json
// @Param        idCliente  path  int  true  "ID del cliente"
// @Success      200  {array}  dto.ValoracionResponse
// @Router       /api/valoraciones/cliente/{idCliente} [get]
func (h *ValoracionHandler) ListByCliente(c *fiber.Ctx) error {
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

// PromedioByCliente godoc
// @Summary      Promedio de puntuaciones emitidas por un cliente
// @Tags         valoraciones
// @Produce      json
// @Param        idCliente  path  int  true  "ID del cliente"
// @Success      200  {object}  dto.PromedioResponse
// @Router       /api/valoraciones/cliente/{idCliente}/promedio [get]
func (h *ValoracionHandler) PromedioByCliente(c *fiber.Ctx) error {
	idCliente, err := parseID(c, "idCliente")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.PromedioByCliente(c.UserContext(), idCliente)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar valoración
// @Tags         valoraciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la valoración"
// @Param        body  body  dto.UpdateValoracionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ValoracionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/valoraciones/{id} [put]
func (h *ValoracionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateValoracionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Puntuacion != nil && (*in.Puntuacion < 1 || *in.Puntuacion > 5) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "puntuación debe estar entre 1 y 5"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar valoración
// @Tags         valoraciones
// @Security     Bearer
// @Param        id  path  int  true  "ID de la valoración"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/valoraciones/{id} [delete]
func (h *ValoracionHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Obtener valoración con bloqueo exclusivo de fila
// @Tags         valoraciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la valoración"
// @Success      200  {object}  dto.ValoracionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/valoraciones/{id}/lock [get]
func (h *ValoracionHandler) GetConBloqueo(c *fiber.Ctx) error {
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
