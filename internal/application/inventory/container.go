// Package inventory implementa el contenedor de estado del inventario: la
// única fuente en memoria de productos y categorías que consume la capa HTTP.
// Las mutaciones pasan por el gateway de persistencia; la cantidad se aplica
// de forma optimista y un fallo del gateway se repara recargando todo el
// estado (sin rollback puntual).
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aslanavm/stok-api/internal/domain"
	"github.com/aslanavm/stok-api/internal/domain/entity"
	"github.com/aslanavm/stok-api/internal/domain/repository"
	"github.com/aslanavm/stok-api/pkg/logger"
)

// Container mantiene la copia en memoria del inventario y aplica las
// mutaciones sobre los repositorios.
//
// Garantía: tras una mutación exitosa, el estado local y el de la base
// coinciden para el registro afectado. Tras un UpdateQuantity fallido, la
// consistencia solo se garantiza cuando el Load() de reparación termina.
type Container struct {
	mu         sync.RWMutex
	products   []entity.Product  // más reciente primero
	categories []entity.Category // ordenadas por nombre (colación turca)

	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logRepo      repository.StockLogRepository

	collator *collate.Collator
	log      *logger.Logger
}

// NewContainer construye el contenedor. El estado queda vacío hasta Load.
func NewContainer(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logRepo repository.StockLogRepository,
	log *logger.Logger,
) *Container {
	return &Container{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logRepo:      logRepo,
		// Los nombres de categoría son turcos (İçecek, Süt & Kahvaltılık...);
		// la colación turca ordena İ/ı/ş correctamente donde ORDER BY no.
		collator: collate.New(language.Turkish),
		log:      log,
	}
}

// Load trae todos los productos y categorías del gateway y reemplaza el
// estado. Si cualquiera de las dos lecturas falla, el estado no se toca y el
// error se propaga para que la capa HTTP lo clasifique.
func (c *Container) Load(ctx context.Context) error {
	products, err := c.productRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargar productos: %w", err)
	}
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargar categorías: %w", err)
	}

	// El collator comparte estado mutable entre llamadas: ordenar siempre
	// bajo el lock, igual que en AddCategory.
	c.mu.Lock()
	c.sortCategories(categories)
	c.products = products
	c.categories = categories
	c.mu.Unlock()
	return nil
}

// Snapshot devuelve una copia de la lista de productos (más reciente primero).
func (c *Container) Snapshot() []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories devuelve una copia de las categorías ordenadas por nombre.
func (c *Container) Categories() []entity.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// TotalStock suma las cantidades de todo el inventario.
func (c *Container) TotalStock() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, p := range c.products {
		total += p.Quantity
	}
	return total
}

// AddProduct valida el borrador, lo persiste y antepone el registro creado al
// estado local. La transición inicial de cantidad queda en el historial como
// INITIAL con old_quantity 0 (best-effort, ver appendLog).
func (c *Container) AddProduct(ctx context.Context, draft entity.Product) (*entity.Product, error) {
	if draft.Quantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now().UTC()

	if err := c.productRepo.Create(ctx, &draft); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.products = append([]entity.Product{draft}, c.products...)
	c.mu.Unlock()

	c.appendLog(ctx, draft.ID, 0, draft.Quantity, entity.ChangeTypeInitial)
	return &draft, nil
}

// EditProduct envía el reemplazo completo al gateway y sustituye la entrada
// local. No escribe historial: una edición no es un cambio de cantidad (ver
// DESIGN.md). created_at del registro original se conserva.
func (c *Container) EditProduct(ctx context.Context, product entity.Product) (*entity.Product, error) {
	if product.Quantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	existing, err := c.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	product.CreatedAt = existing.CreatedAt

	if err := c.productRepo.Update(ctx, &product); err != nil {
		return nil, err
	}

	c.mu.Lock()
	for i := range c.products {
		if c.products[i].ID == product.ID {
			c.products[i] = product
			break
		}
	}
	c.mu.Unlock()
	return &product, nil
}

// DeleteProduct elimina en el gateway y luego localmente. El historial del
// producto cascadea en la base.
func (c *Container) DeleteProduct(ctx context.Context, id string) error {
	if err := c.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// UpdateQuantity aplica la nueva cantidad al estado local de inmediato
// (optimista) y después la escribe en el gateway. Si la escritura falla, se
// repara recargando todo el estado con Load y se devuelve el error original.
// reason "SALE" marca la transición como venta; cualquier otro valor es UPDATE.
func (c *Container) UpdateQuantity(ctx context.Context, id string, newQuantity int, reason string) error {
	if newQuantity < 0 {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}

	c.mu.Lock()
	oldQuantity := -1
	for i := range c.products {
		if c.products[i].ID == id {
			oldQuantity = c.products[i].Quantity
			c.products[i].Quantity = newQuantity
			break
		}
	}
	c.mu.Unlock()
	if oldQuantity < 0 {
		return domain.ErrNotFound
	}

	if err := c.productRepo.UpdateQuantity(ctx, id, newQuantity); err != nil {
		// Reparación gruesa: recargar todo en lugar de revertir solo la fila.
		if loadErr := c.Load(ctx); loadErr != nil {
			c.log.Error().Err(loadErr).Str("product_id", id).
				Msg("recarga de reparación fallida tras ajuste de cantidad")
		}
		return err
	}

	changeType := entity.ChangeTypeUpdate
	if reason == entity.ChangeTypeSale {
		changeType = entity.ChangeTypeSale
	}
	c.appendLog(ctx, id, oldQuantity, newQuantity, changeType)
	return nil
}

// AddCategory inserta una categoría y la añade al estado local manteniendo el
// orden. Un nombre duplicado se tolera: se registra y no se propaga error.
func (c *Container) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	category := entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.categoryRepo.Create(ctx, &category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			c.log.Info().Str("name", name).Msg("categoría duplicada ignorada")
			return nil
		}
		return err
	}

	c.mu.Lock()
	c.categories = append(c.categories, category)
	c.sortCategories(c.categories)
	c.mu.Unlock()
	return nil
}

// History devuelve el historial de stock de un producto, más reciente primero.
func (c *Container) History(ctx context.Context, productID string) ([]entity.StockLog, error) {
	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return c.logRepo.ListByProduct(ctx, productID)
}

// appendLog escribe un registro de historial. Si falla después de que la
// escritura del producto ya se aceptó, la inconsistencia se asume: el cambio
// de producto queda y el rastro de auditoría queda incompleto.
func (c *Container) appendLog(ctx context.Context, productID string, oldQ, newQ int, changeType string) {
	entry := &entity.StockLog{
		ProductID:   productID,
		OldQuantity: oldQ,
		NewQuantity: newQ,
		ChangeType:  changeType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.logRepo.Create(ctx, entry); err != nil {
		c.log.Warn().Err(err).Str("product_id", productID).Str("change_type", changeType).
			Msg("no se pudo escribir el historial de stock")
	}
}

func (c *Container) sortCategories(categories []entity.Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		return c.collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})
}
