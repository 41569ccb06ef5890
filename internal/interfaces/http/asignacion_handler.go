package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/application/usecase"
)

// AsignacionHandler maneja las peticiones HTTP para asignaciones de reparto.
type AsignacionHandler struct {
	uc *usecase.AsignacionUseCase
}

// NewAsignacionHandler construye el handler.
func NewAsignacionHandler(uc *usecase.AsignacionUseCase) *AsignacionHandler {
	return &AsignacionHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar repartidor a un pedido
// @Tags         asignaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAsignacionRequest  true  "Datos de la asignación"
// @Success      201   {object}  dto.AsignacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/asignaciones [post]
func (h *AsignacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAsignacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDPedido <= 0 || in.IDRepartidor <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_pedido e id_repartidor son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar asignaciones
// @Tags         asignaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AsignacionResponse
// @Router       /api/asignaciones [get]
func (h *AsignacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPendientes godoc
// @Summary      Listar asignaciones con entrega pendiente
// @Tags         asignaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AsignacionResponse
// @Router       /api/asignaciones/pendientes [get]
func (h *AsignacionHandler) ListPendientes(c *fiber.Ctx) error {
	out, err := h.uc.ListPendientes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByPedido godoc
// @Summary      Listar asignaciones de un pedido
// @Tags         asignaciones
// @Security     Bearer
// @Produce      json
// @Param        idPedido  path  int  true  "ID del pedido"
// @Success      200  {array}  dto.AsignacionResponse
// @Router       /api/asignaciones/pedido/{idPedido} [get]
func (h *AsignacionHandler) ListByPedido(c *fiber.Ctx) error {
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

// ListByRepartidor godoc
// @Summary      Listar asignaciones de un repartidor
// @Tags         asignaciones
// @Security     Bearer
// @Produce      json
// @Param        idRepartidor  path  int  true  "ID del repartidor"
// @Success      200  {array}  dto.AsignacionResponse
// @Router       /api/asignaciones/repartidor/{idRepartidor} [get]
func (h *AsignacionHandler) ListByRepartidor(c *fiber.Ctx) error {
	idRepartidor, err := parseID(c, "idRepartidor")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByRepartidor(c.UserContext(), idRepartidor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener asignación por ID
// @Tags         asignaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la asignación"
// @Success      200  {object}  dto.AsignacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/{id} [get]
func (h *AsignacionHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar asignación
// @Tags         asignaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la asignación"
// @Param        body  body  dto.UpdateAsignacionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AsignacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/asignaciones/{id} [put]
func (h *AsignacionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateAsignacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarEntrega godoc
// @Summary      Registrar la entrega de una asignación
// @Tags         asignaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la asignación"
// @Success      200  {object}  dto.AsignacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/{id}/entrega [put]
func (h *AsignacionHandler) RegistrarEntrega(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RegistrarEntrega(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar asignación
// @Tags         asignaciones
// @Security     Bearer
// @Param        id  path  int  true  "ID de la asignación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/{id} [delete]
func (h *AsignacionHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Obtener asignación con bloqueo exclusivo de fila
// @Tags         asignaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la asignación"
// @Success      200  {object}  dto.AsignacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asignaciones/{id}/lock [get]
func (h *AsignacionHandler) GetConBloqueo(c *fiber.Ctx) error {
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
