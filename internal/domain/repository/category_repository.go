package repository

import (
	"context"

	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// Create devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, category *entity.Category) error
	// List devuelve todas las categorías ordenadas por nombre.
	List(ctx context.Context) ([]entity.Category, error)
}
