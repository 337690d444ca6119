package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/application/usecase"
)

// VitrineHandler administración de vitrinas.
type VitrineHandler struct {
	uc *usecase.VitrineUseCase
}

func NewVitrineHandler(uc *usecase.VitrineUseCase) *VitrineHandler {
	return &VitrineHandler{uc: uc}
}

// List godoc
// @Summary      Listar vitrinas
// @Tags         vitrines
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VitrineResponse
// @Router       /api/vitrines [get]
func (h *VitrineHandler) List(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vitrina
// @Tags         vitrines
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vitrina"
// @Success      200  {object}  dto.VitrineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vitrines/{id} [get]
func (h *VitrineHandler) GetByID(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vitrina
// @Tags         vitrines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVitrineRequest  true  "Datos de la vitrina"
// @Success      201   {object}  dto.VitrineResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vitrines [post]
func (h *VitrineHandler) Create(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateVitrineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actor, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar vitrina
// @Tags         vitrines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la vitrina"
// @Param        body  body  dto.UpdateVitrineRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VitrineResponse
// @Router       /api/vitrines/{id} [put]
func (h *VitrineHandler) Update(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateVitrineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), actor, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
