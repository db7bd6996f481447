package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/r-kh/AiTiGuru/internal/domain"
	"github.com/r-kh/AiTiGuru/internal/domain/entity"
	"github.com/r-kh/AiTiGuru/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo implementación del puerto OrderItemRepository sobre PostgreSQL (usable con pool o tx).
// La PK compuesta (order_id, product_id) garantiza a lo más una línea por par.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador de líneas de pedido. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

// Get obtiene la línea para (orderID, productID). Devuelve nil si no existe.
func (r *OrderItemRepo) Get(orderID, productID string) (*entity.OrderItem, error) {
	query := `
		SELECT order_id, product_id, quantity, price, created_at, updated_at
		FROM order_items WHERE order_id = $1 AND product_id = $2`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, orderID, productID).Scan(
		&it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// Create inserta una línea nueva.
func (r *OrderItemRepo) Create(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.OrderID, item.ProductID, item.Quantity, item.Price, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// UpdateQuantity escribe la cantidad fusionada de una línea existente. El precio no se toca.
func (r *OrderItemRepo) UpdateQuantity(orderID, productID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE order_items SET quantity = $3, updated_at = now() WHERE order_id = $1 AND product_id = $2`,
		orderID, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update order item quantity: %w", err)
	}
	return nil
}

// ListByOrder devuelve las líneas de un pedido en orden de inserción.
func (r *OrderItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT order_id, product_id, quantity, price, created_at, updated_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at, product_id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
