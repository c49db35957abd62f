package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aslanavm/stok-api/internal/domain"
	"github.com/aslanavm/stok-api/internal/domain/entity"
	"github.com/aslanavm/stok-api/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación de StockLogRepository sobre PostgreSQL (usable con pool o tx).
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Create persiste un registro del historial.
func (r *StockLogRepo) Create(ctx context.Context, log *entity.StockLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO product_history (id, product_id, old_quantity, new_quantity, change_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.ProductID, log.OldQuantity, log.NewQuantity, log.ChangeType, log.CreatedAt,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return domain.ErrSchemaMissing
		}
		return fmt.Errorf("insert stock log: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial de un producto, del más reciente al más antiguo.
func (r *StockLogRepo) ListByProduct(ctx context.Context, productID string) ([]entity.StockLog, error) {
	query := `
		SELECT id, product_id, old_quantity, new_quantity, change_type, created_at
		FROM product_history WHERE product_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrSchemaMissing
		}
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()

	var list []entity.StockLog
	for rows.Next() {
		var l entity.StockLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.OldQuantity, &l.NewQuantity, &l.ChangeType, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
