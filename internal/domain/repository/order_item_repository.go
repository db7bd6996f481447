package repository

import "github.com/r-kh/AiTiGuru/internal/domain/entity"

// OrderItemRepository define el puerto de persistencia para las líneas de pedido.
// La identidad es compuesta: (orderID, productID).
type OrderItemRepository interface {
	Get(orderID, productID string) (*entity.OrderItem, error)
	Create(item *entity.OrderItem) error
	UpdateQuantity(orderID, productID string, quantity int64) error
	// ListByOrder devuelve las líneas en orden de inserción.
	ListByOrder(orderID string) ([]*entity.OrderItem, error)
}
