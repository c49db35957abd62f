package inventory

import (
	"strings"

	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// Filter deriva la vista filtrada de la lista de productos. Función pura:
// no toca el contenedor y preserva el orden de entrada.
//
// Regla de búsqueda: el término (case-insensitive) debe ser substring del
// nombre o de la marca, o substring literal del barcode (case-sensitive, tal
// cual se tecleó o se escaneó). Regla de categoría: vacía significa "todas";
// si no, igualdad exacta con el campo del producto.
//
// Sin índices ni estructura incremental: el inventario de una tienda es
// pequeño y se recalcula en cada petición.
func Filter(products []entity.Product, searchTerm, selectedCategory string) []entity.Product {
	term := strings.ToLower(searchTerm)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Company), term) ||
			strings.Contains(p.Barcode, searchTerm)

		matchesCategory := selectedCategory == "" || p.Category == selectedCategory

		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}
	return out
}
