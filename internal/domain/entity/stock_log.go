package entity

import "time"

// Tipos de cambio registrados en el historial de stock.
const (
	ChangeTypeInitial = "INITIAL" // alta del producto (old_quantity siempre 0)
	ChangeTypeUpdate  = "UPDATE"  // ajuste manual de cantidad
	ChangeTypeSale    = "SALE"    // salida por venta
)

// StockLog es el registro de auditoría de una transición de cantidad.
// Append-only: nunca se modifica ni se borra (el borrado del producto
// cascadea en la base, no aquí).
type StockLog struct {
	ID          string
	ProductID   string
	OldQuantity int
	NewQuantity int
	ChangeType  string // INITIAL, UPDATE o SALE
	CreatedAt   time.Time
}
