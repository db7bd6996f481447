package repository

import (
	"github.com/shopspring/decimal"

	"github.com/r-kh/AiTiGuru/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// Las lecturas devuelven nil (sin error) cuando el pedido no existe.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila del pedido (SELECT FOR UPDATE). Usar dentro de transacciones.
	GetForUpdate(id string) (*entity.Order, error)
	// UpdateTotal escribe el total recalculado. Solo la transacción de líneas lo usa.
	UpdateTotal(orderID string, total decimal.Decimal) error
}
