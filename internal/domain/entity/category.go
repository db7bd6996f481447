package entity

import "time"

// Category categoría de la nomenclatura. ParentID permite jerarquía (nil = raíz).
type Category struct {
	ID        string
	Name      string
	ParentID  *string
	CreatedAt time.Time
}
