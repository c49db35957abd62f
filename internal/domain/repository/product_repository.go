package repository

import (
	"context"

	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve todos los productos ordenados del más reciente al más antiguo.
	List(ctx context.Context) ([]entity.Product, error)
	// Update reemplaza todos los campos editables del producto con el mismo ID.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity escribe solo la cantidad (usado por el ajuste optimista).
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}
