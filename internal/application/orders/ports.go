package orders

import (
	"context"

	"github.com/r-kh/AiTiGuru/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Es la frontera de commit del caso de uso: todas las mutaciones
// se aplican completas o no se aplica ninguna. Un fallo de Begin o Commit se
// reporta envuelto en domain.ErrPersistence.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		itemRepo repository.OrderItemRepository,
	) error) error
}
