package dto

import (
	"time"

	"github.com/r-kh/AiTiGuru/internal/domain/entity"
)

// CreateOrderRequest entrada para crear un pedido vacío para un cliente.
type CreateOrderRequest struct {
	ClientID string `json:"client_id"`
}

// AddOrderItemRequest entrada para agregar un producto a un pedido.
// Quantity es la cantidad adicional solicitada, no un total objetivo.
type AddOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// OrderItemResponse línea de pedido. Price se serializa como string decimal
// con 2 dígitos fraccionarios exactos.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Price     string `json:"price"`
}

// OrderResponse pedido con sus líneas. TotalAmount como string decimal "NN.NN".
type OrderResponse struct {
	OrderID     string              `json:"order_id"`
	ClientID    string              `json:"client_id"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	OrderDate   time.Time           `json:"order_date"`
	Items       []OrderItemResponse `json:"items"`
}

// ToOrderResponse convierte la entidad a su representación HTTP.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
		})
	}
	return &OrderResponse{
		OrderID:     o.ID,
		ClientID:    o.ClientID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount.StringFixed(2),
		OrderDate:   o.OrderDate,
		Items:       items,
	}
}
