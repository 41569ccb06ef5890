package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/application/usecase"
)

// RepartidorHandler maneja las peticiones HTTP para repartidores.
type RepartidorHandler struct {
	uc *usecase.RepartidorUseCase
}

// NewRepartidorHandler construye el handler.
func NewRepartidorHandler(uc *usecase.RepartidorUseCase) *RepartidorHandler {
	return &RepartidorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar repartidor
// @Tags         repartidores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRepartidorRequest  true  "Datos del repartidor"
// @Success      201   {object}  dto.RepartidorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/repartidores [post]
func (h *RepartidorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepartidorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y email son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar repartidores
// @Tags         repartidores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RepartidorResponse
// @Router       /api/repartidores [get]
func (h *RepartidorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener repartidor por ID
// @Tags         repartidores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del repartidor"
// @Success      200  {object}  dto.RepartidorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/repartidores/{id} [get]
func (h *RepartidorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar repartidor
// @Tags         repartidores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del repartidor"
// @Param        body  body  dto.UpdateRepartidorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RepartidorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/repartidores/{id} [put]
func (h *RepartidorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateRepartidorRequest
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
// @Summary      Eliminar repartidor
// @Tags         repartidores
// @Security     Bearer
// @Param        id  path  int  true  "ID del repartidor"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/repartidores/{id} [delete]
func (h *RepartidorHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Obtener repartidor con bloqueo exclusivo de fila
// @Tags         repartidores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del repartidor"
// @Success      200  {object}  dto.RepartidorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/repartidores/{id}/lock [get]
func (h *RepartidorHandler) GetConBloqueo(c *fiber.Ctx) error {
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
