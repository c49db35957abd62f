package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del inventario.
type InventoryHandler struct {
	container *inventory.Container
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(container *inventory.Container) *InventoryHandler {
	return &InventoryHandler{container: container}
}

// List godoc
// @Summary      Listar productos filtrados
// @Description  Vista filtrada del inventario en memoria: search busca en
//               nombre/marca (case-insensitive) y barcode (literal); category
//               filtra por igualdad exacta, vacío = todas.
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Término de búsqueda"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	filtered := inventory.Filter(
		h.container.Snapshot(),
		c.Query("search"),
		c.Query("category"),
	)
	return c.JSON(dto.ProductListResponse{
		Items:      dto.FromProducts(filtered),
		Count:      len(filtered),
		TotalStock: h.container.TotalStock(),
	})
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if missing := in.MissingFields(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "campos obligatorios ausentes: " + strings.Join(missing, ", "),
		})
	}
	created, err := h.container.AddProduct(c.Context(), in.ToDraft())
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(*created))
}

// Update godoc
// @Summary      Reemplazar producto (edición completa)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SaveProductRequest  true  "Registro de reemplazo"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if missing := in.MissingFields(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "campos obligatorios ausentes: " + strings.Join(missing, ", "),
		})
	}
	replacement := in.ToDraft()
	replacement.ID = id
	updated, err := h.container.EditProduct(c.Context(), replacement)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.FromProduct(*updated))
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Irreversible. Exige confirm=true: es el paso de confirmación
//               explícita del flujo de borrado.
// @Tags         products
// @Produce      json
// @Param        id       path   string  true  "ID del producto"
// @Param        confirm  query  bool    true  "Debe ser true"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "CONFIRM_REQUIRED", Message: "el borrado es irreversible; repite con confirm=true",
		})
	}
	if err := h.container.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateQuantity godoc
// @Summary      Ajustar cantidad
// @Description  Aplica la cantidad de forma optimista y la persiste; el fallo
//               del gateway dispara una recarga completa del estado. Cada
//               ajuste aceptado deja exactamente un registro en el historial.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Nueva cantidad y razón opcional (SALE)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/quantity [patch]
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !in.Quantity.Set {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es obligatorio"})
	}
	if err := h.container.UpdateQuantity(c.Context(), id, in.Quantity.Value, in.Reason); err != nil {
		return storeError(c, err)
	}
	for _, p := range h.container.Snapshot() {
		if p.ID == id {
			return c.JSON(dto.FromProduct(p))
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Historial de stock de un producto
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockLogListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	logs, err := h.container.History(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(dto.StockLogListResponse{Items: dto.FromStockLogs(logs)})
}

// SeedSamples godoc
// @Summary      Sembrar productos de ejemplo
// @Description  Solo con el depósito vacío: inserta 5 productos de muestra y
//               sus 4 categorías (duplicados de categoría tolerados).
// @Tags         products
// @Produce      json
// @Success      201  {object}  dto.ProductListResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/samples [post]
func (h *InventoryHandler) SeedSamples(c *fiber.Ctx) error {
	if err := h.container.SeedSamples(c.Context()); err != nil {
		return storeError(c, err)
	}
	products := h.container.Snapshot()
	return c.Status(fiber.StatusCreated).JSON(dto.ProductListResponse{
		Items:      dto.FromProducts(products),
		Count:      len(products),
		TotalStock: h.container.TotalStock(),
	})
}

// Reload godoc
// @Summary      Recargar el estado desde la base
// @Description  Reintento manual tras un error de carga.
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products/reload [post]
func (h *InventoryHandler) Reload(c *fiber.Ctx) error {
	if err := h.container.Load(c.Context()); err != nil {
		return storeError(c, err)
	}
	products := h.container.Snapshot()
	return c.JSON(dto.ProductListResponse{
		Items:      dto.FromProducts(products),
		Count:      len(products),
		TotalStock: h.container.TotalStock(),
	})
}
