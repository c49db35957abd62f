package entity

import "time"

// Category representa una categoría de productos. El nombre es único;
// en este diseño las categorías no se editan ni se eliminan.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
