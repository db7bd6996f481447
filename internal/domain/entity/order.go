package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. La transacción de líneas no lee ni cambia el estado.
const (
	OrderStatusNew       = "NEW"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
)

// Order representa un pedido de un cliente. TotalAmount es un valor derivado:
// siempre se recalcula desde las líneas, nunca lo asigna el caller.
type Order struct {
	ID          string
	ClientID    string
	Status      string
	TotalAmount decimal.Decimal // 2 decimales, derivado de Items
	OrderDate   time.Time
	Items       []*OrderItem // líneas en orden de inserción; el pedido es dueño de sus líneas
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
