package dto

import (
	"time"

	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// StockLogResponse salida de un registro del historial de stock.
type StockLogResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	ChangeType  string    `json:"change_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockLogListResponse historial de un producto (más reciente primero).
type StockLogListResponse struct {
	Items []StockLogResponse `json:"items"`
}

// FromStockLogs convierte la lista preservando el orden.
func FromStockLogs(logs []entity.StockLog) []StockLogResponse {
	out := make([]StockLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, StockLogResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			OldQuantity: l.OldQuantity,
			NewQuantity: l.NewQuantity,
			ChangeType:  l.ChangeType,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out
}
