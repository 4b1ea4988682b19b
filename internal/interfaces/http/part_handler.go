package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invmanagement/internal/application/dto"
	"github.com/jhoicas/invmanagement/internal/application/usecase"
)

// PartHandler maneja las peticiones HTTP para Part.
type PartHandler struct {
	uc *usecase.PartUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *usecase.PartUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pieza
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartForm  true  "Formulario de pieza"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.PartForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pieza por ID
// @Tags         parts
// @Produce      json
// @Param        id   path  int  true  "ID de la pieza"
// @Success      200  {object}  dto.PartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar o buscar piezas
// @Description  Sin q devuelve todas. Con q devuelve la pieza con ese ID (si q es numérico) y las que empiezan con q, sin distinguir mayúsculas ni espacios.
// @Tags         parts
// @Produce      json
// @Param        q    query  string  false  "ID o prefijo del nombre"
// @Success      200  {object}  dto.PartListResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Search(c.Query("q")))
}

// Update godoc
// @Summary      Actualizar pieza
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id    path  int           true  "ID de la pieza"
// @Param        body  body  dto.PartForm  true  "Formulario de pieza"
// @Success      200   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.PartForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar pieza
// @Description  affected_products lista los productos que siguen referenciando la pieza borrada.
// @Tags         parts
// @Produce      json
// @Param        id   path  int  true  "ID de la pieza"
// @Success      200  {object}  dto.DeletePartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
