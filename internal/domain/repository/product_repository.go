package repository

import "github.com/r-kh/AiTiGuru/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// Las lecturas devuelven nil (sin error) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro de transacciones.
	GetForUpdate(id string) (*entity.Product, error)
	UpdateStock(productID string, stock int64) error
	List(limit, offset int) ([]*entity.Product, error)
}
