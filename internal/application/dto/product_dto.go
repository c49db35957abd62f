package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// SaveProductRequest entrada para crear o reemplazar un producto.
// Los nombres JSON replican las columnas de la tabla products.
type SaveProductRequest struct {
	Name          string          `json:"name"`
	Company       string          `json:"company"`
	Category      string          `json:"category"`
	Quantity      FlexibleInt     `json:"quantity"`
	PurchasePrice FlexibleDecimal `json:"purchasePrice"`
	SellingPrice  FlexibleDecimal `json:"sellingPrice"`
	Barcode       string          `json:"barcode"`
	Image         string          `json:"image"`
}

// MissingFields devuelve los campos obligatorios ausentes o vacíos.
// Category e Image son opcionales.
func (r SaveProductRequest) MissingFields() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Company == "" {
		missing = append(missing, "company")
	}
	if !r.Quantity.Set {
		missing = append(missing, "quantity")
	}
	if !r.PurchasePrice.Set {
		missing = append(missing, "purchasePrice")
	}
	if !r.SellingPrice.Set {
		missing = append(missing, "sellingPrice")
	}
	if r.Barcode == "" {
		missing = append(missing, "barcode")
	}
	return missing
}

// ToDraft construye el borrador de entidad (sin ID; lo asigna el gateway).
func (r SaveProductRequest) ToDraft() entity.Product {
	return entity.Product{
		Name:          r.Name,
		Company:       r.Company,
		Category:      r.Category,
		Quantity:      r.Quantity.Value,
		PurchasePrice: r.PurchasePrice.Value,
		SellingPrice:  r.SellingPrice.Value,
		Barcode:       r.Barcode,
		Image:         r.Image,
	}
}

// UpdateQuantityRequest entrada del ajuste de cantidad.
// Reason opcional: "SALE" marca la transición como venta; cualquier otro valor
// (o ausencia) produce un registro UPDATE.
type UpdateQuantityRequest struct {
	Quantity FlexibleInt `json:"quantity"`
	Reason   string      `json:"reason"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Company       string          `json:"company"`
	Category      string          `json:"category,omitempty"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Barcode       string          `json:"barcode"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProductListResponse lista filtrada más los contadores del tablero.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Count      int               `json:"count"`       // productos tras el filtro
	TotalStock int               `json:"total_stock"` // suma de cantidades de todo el inventario
}

// FromProduct convierte la entidad a su respuesta.
func FromProduct(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Company:       p.Company,
		Category:      p.Category,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Barcode:       p.Barcode,
		Image:         p.Image,
		CreatedAt:     p.CreatedAt,
	}
}

// FromProducts convierte la lista preservando el orden.
func FromProducts(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
