package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/application/inventory"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	container *inventory.Container
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(container *inventory.Container) *CategoryHandler {
	return &CategoryHandler{container: container}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.CategoryListResponse{
		Items: dto.FromCategories(h.container.Categories()),
	})
}

// Create godoc
// @Summary      Crear categoría
// @Description  El nombre duplicado se tolera: responde 200 con la lista
//               vigente en lugar de un error.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre de la categoría"
// @Success      200   {object}  dto.CategoryListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es obligatorio"})
	}
	if err := h.container.AddCategory(c.Context(), in.Name); err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.CategoryListResponse{
		Items: dto.FromCategories(h.container.Categories()),
	})
}
