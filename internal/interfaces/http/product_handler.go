package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invmanagement/internal/application/dto"
	"github.com/jhoicas/invmanagement/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductForm  true  "Formulario de producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductForm
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar o buscar productos
// @Tags         products
// @Produce      json
// @Param        q    query  string  false  "ID o prefijo del nombre"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Search(c.Query("q")))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del producto"
// @Param        body  body  dto.ProductForm  true  "Formulario de producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.ProductForm
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
// @Summary      Borrar producto
// @Description  Un producto con piezas asociadas no se puede borrar.
// @Tags         products
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPart godoc
// @Summary      Asociar pieza a producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del producto"
// @Param        body  body  dto.AssociatePartRequest  true  "part_id"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/parts [post]
func (h *ProductHandler) AddPart(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.AssociatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.PartID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PART", Message: "se debe seleccionar una pieza para asociarla"})
	}
	out, err := h.uc.AddPart(id, *in.PartID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemovePart godoc
// @Summary      Quitar pieza asociada
// @Description  Quita una ocurrencia; la pieza sigue en el inventario.
// @Tags         products
// @Produce      json
// @Param        id      path  int  true  "ID del producto"
// @Param        partId  path  int  true  "ID de la pieza"
// @Success      200     {object}  dto.ProductResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/products/{id}/parts/{partId} [delete]
func (h *ProductHandler) RemovePart(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	partID, ok := paramID(c, "partId")
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.RemovePart(id, partID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
