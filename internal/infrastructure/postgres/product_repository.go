package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aslanavm/stok-api/internal/domain"
	"github.com/aslanavm/stok-api/internal/domain/entity"
	"github.com/aslanavm/stok-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, created_at, name, company, category, quantity, "purchasePrice", "sellingPrice", barcode, image`

// Create persiste un nuevo producto. Si no trae ID, el gateway lo asigna aquí.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (id, created_at, name, company, category, quantity, "purchasePrice", "sellingPrice", barcode, image)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, ''))`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CreatedAt, product.Name, product.Company, product.Category,
		product.Quantity, product.PurchasePrice, product.SellingPrice, product.Barcode, product.Image,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return domain.ErrSchemaMissing
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUndefinedTable(err) {
			return nil, domain.ErrSchemaMissing
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos, del más reciente al más antiguo.
// Sin paginación: el inventario de una tienda cabe en memoria.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrSchemaMissing
		}
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos editables del producto (edición completa).
// created_at no se toca.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, company = $3, category = NULLIF($4, ''), quantity = $5,
		    "purchasePrice" = $6, "sellingPrice" = $7, barcode = $8, image = NULLIF($9, '')
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Company, product.Category, product.Quantity,
		product.PurchasePrice, product.SellingPrice, product.Barcode, product.Image,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return domain.ErrSchemaMissing
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity escribe solo la cantidad (usado por el ajuste optimista).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		if isUndefinedTable(err) {
			return domain.ErrSchemaMissing
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. El historial cascadea en la base.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isUndefinedTable(err) {
			return domain.ErrSchemaMissing
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanProduct lee una fila de products; category e image pueden venir NULL.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var category, image *string
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.Name, &p.Company, &category,
		&p.Quantity, &p.PurchasePrice, &p.SellingPrice, &p.Barcode, &image,
	)
	if err != nil {
		return nil, err
	}
	if category != nil {
		p.Category = *category
	}
	if image != nil {
		p.Image = *image
	}
	return &p, nil
}
