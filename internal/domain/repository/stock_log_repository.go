package repository

import (
	"context"

	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// StockLogRepository define el puerto de persistencia para el historial de stock.
// Solo inserción y lectura: las filas nunca se modifican.
type StockLogRepository interface {
	Create(ctx context.Context, log *entity.StockLog) error
	// ListByProduct devuelve el historial de un producto, del más reciente al más antiguo.
	ListByProduct(ctx context.Context, productID string) ([]entity.StockLog, error)
}
