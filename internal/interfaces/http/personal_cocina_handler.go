package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastanog/restaurante-api/internal/application/dto"
	"github.com/jcastanog/restaurante-api/internal/application/usecase"
)

// PersonalCocinaHandler maneja las peticiones HTTP para el personal de cocina.
type PersonalCocinaHandler struct {
	uc *usecase.PersonalCocinaUseCase
}

// NewPersonalCocinaHandler construye el handler.
func NewPersonalCocinaHandler(uc *usecase.PersonalCocinaUseCase) *PersonalCocinaHandler {
	return &PersonalCocinaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar personal de cocina
// @Tags         personal-cocina
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePersonalCocinaRequest  true  "Datos del integrante"
// @Success      201   {object}  dto.PersonalCocinaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/personal-cocina [post]
func (h *PersonalCocinaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonalCocinaRequest
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
// @Summary      Listar personal de cocina
// @Tags         personal-cocina
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PersonalCocinaResponse
// @Router       /api/personal-cocina [get]
func (h *PersonalCocinaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener integrante por ID
// @Tags         personal-cocina
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del integrante"
// @Success      200  {object}  dto.PersonalCocinaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personal-cocina/{id} [get]
func (h *PersonalCocinaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar integrante
// @Tags         personal-cocina
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del integrante"
// @Param        body  body  dto.UpdatePersonalCocinaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PersonalCocinaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/personal-cocina/{id} [put]
func (h *PersonalCocinaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePersonalCocinaRequest
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
// @Summary      Eliminar integrante
// @Tags         personal-cocina
// @Security     Bearer
// @Param        id  path  int  true  "ID del integrante"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personal-cocina/{id} [delete]
func (h *PersonalCocinaHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Obtener integrante con bloqueo exclusivo de fila
// @Tags         personal-cocina
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del integrante"
// @Success      200  {object}  dto.PersonalCocinaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personal-cocina/{id}/lock [get]
func (h *PersonalCocinaHandler) GetConBloqueo(c *fiber.Ctx) error {
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
