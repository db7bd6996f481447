package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem es una línea de pedido con identidad compuesta (OrderID, ProductID):
// existe a lo más una línea por par pedido-producto. Price se captura al crear
// la línea; cambios posteriores del precio del producto no la alteran.
type OrderItem struct {
	OrderID   string
	ProductID string
	Quantity  int64           // siempre > 0
	Price     decimal.Decimal // precio unitario capturado en la creación (2 decimales)
	CreatedAt time.Time
	UpdatedAt time.Time
}
