package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aslanavm/stok-api/internal/domain"
	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// sampleCategories son las cuatro categorías del arranque rápido.
var sampleCategories = []string{
	"Süt & Kahvaltılık",
	"İçecek",
	"Bakliyat",
	"Temizlik",
}

// sampleProducts son los cinco productos de demostración que se ofrecen
// cuando el depósito está vacío.
func sampleProducts() []entity.Product {
	return []entity.Product{
		{
			Name: "Tam Yağlı Süt 1L", Company: "Sütaş", Quantity: 45,
			PurchasePrice: decimal.NewFromFloat(22.50), SellingPrice: decimal.NewFromFloat(35.00),
			Barcode: "869012345678", Category: "Süt & Kahvaltılık",
		},
		{
			Name: "Çaykur Rize Turist Çayı 1kg", Company: "Çaykur", Quantity: 12,
			PurchasePrice: decimal.NewFromFloat(110.00), SellingPrice: decimal.NewFromFloat(145.90),
			Barcode: "869055544433", Category: "İçecek",
		},
		{
			Name: "Beypazarı Maden Suyu 6'lı", Company: "Beypazarı", Quantity: 8,
			PurchasePrice: decimal.NewFromFloat(28.00), SellingPrice: decimal.NewFromFloat(42.50),
			Barcode: "869099988877", Category: "İçecek",
		},
		{
			Name: "Osmancık Pirinç 2.5kg", Company: "Yayla", Quantity: 20,
			PurchasePrice: decimal.NewFromFloat(85.00), SellingPrice: decimal.NewFromFloat(115.00),
			Barcode: "869011122233", Category: "Bakliyat",
		},
		{
			Name: "Çamaşır Suyu 750ml", Company: "Domestos", Quantity: 30,
			PurchasePrice: decimal.NewFromFloat(32.00), SellingPrice: decimal.NewFromFloat(49.90),
			Barcode: "869044455566", Category: "Temizlik",
		},
	}
}

// SeedSamples inserta los cinco productos de ejemplo y sus cuatro categorías.
// Solo corre con el depósito vacío (segunda invocación -> ErrConflict), de
// modo que la lista queda exactamente en cinco. Las categorías se intentan
// siempre y el duplicado se tolera, así una siembra repetida no las duplica.
func (c *Container) SeedSamples(ctx context.Context) error {
	c.mu.RLock()
	empty := len(c.products) == 0
	c.mu.RUnlock()
	if !empty {
		return fmt.Errorf("%w: el depósito ya tiene productos", domain.ErrConflict)
	}

	for _, name := range sampleCategories {
		if err := c.AddCategory(ctx, name); err != nil {
			return fmt.Errorf("sembrar categoría %q: %w", name, err)
		}
	}
	for _, draft := range sampleProducts() {
		if _, err := c.AddProduct(ctx, draft); err != nil {
			return fmt.Errorf("sembrar producto %q: %w", draft.Name, err)
		}
	}
	return nil
}
