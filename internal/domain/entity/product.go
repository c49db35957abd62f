package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo en stock de la tienda.
// Quantity nunca es negativo; los cambios de cantidad se registran en StockLog.
// Category referencia una Category por nombre (sin integridad referencial).
type Product struct {
	ID            string
	Name          string
	Company       string          // marca o proveedor, texto libre
	Category      string          // vacío si no tiene categoría
	Quantity      int
	PurchasePrice decimal.Decimal // precio de compra
	SellingPrice  decimal.Decimal // precio de venta
	Barcode       string          // no necesariamente único
	Image         string          // data URL base64, opcional
	CreatedAt     time.Time
}
