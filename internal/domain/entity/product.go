package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo de la nomenclatura con su stock disponible.
// Stock solo se decrementa vía la transacción de pedidos (AddProduct) o se
// repone por operaciones externas de reabastecimiento.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Stock       int64           // unidades disponibles, nunca negativo
	Price       decimal.Decimal // precio unitario de venta (2 decimales)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
