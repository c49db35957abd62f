package dto

import "github.com/aslanavm/stok-api/internal/domain/entity"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse lista de categorías ordenadas por nombre.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// FromCategories convierte la lista preservando el orden.
func FromCategories(categories []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}
