package orders

import (
	"context"
	"time"

	"github.com/r-kh/AiTiGuru/internal/domain"
	"github.com/r-kh/AiTiGuru/internal/domain/entity"
	"github.com/r-kh/AiTiGuru/internal/domain/money"
	"github.com/r-kh/AiTiGuru/internal/domain/repository"
)

// AddProductUseCase agrega N unidades de un producto a un pedido de forma
// transaccional: valida stock, fusiona adiciones repetidas en una sola línea,
// descuenta stock y recalcula el total del pedido, todo con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type AddProductUseCase struct {
	txRunner TxRunner
}

// NewAddProductUseCase construye el caso de uso.
func NewAddProductUseCase(txRunner TxRunner) *AddProductUseCase {
	return &AddProductUseCase{txRunner: txRunner}
}

// AddProductInput entrada para agregar un producto a un pedido.
// Quantity es siempre la cantidad adicional solicitada en esta llamada,
// no un total objetivo.
type AddProductInput struct {
	OrderID   string
	ProductID string
	Quantity  int64
}

// AddProduct ejecuta la transacción de reconciliación de líneas:
//
//  1. Carga el pedido y el producto con bloqueo de fila; ausencia -> error de dominio.
//  2. Verifica stock contra la cantidad literal solicitada.
//  3. Si ya existe línea para (pedido, producto) suma la cantidad (no se crea
//     línea nueva ni se recaptura el precio); si no, crea la línea con el precio
//     actual del producto redondeado a 2 decimales.
//  4. Descuenta el stock y recalcula el total desde cero a partir de todas las líneas.
//
// Devuelve el pedido actualizado con sus líneas. Si algo falla no se persiste nada.
func (uc *AddProductUseCase) AddProduct(ctx context.Context, input AddProductInput) (*entity.Order, error) {
	if input.OrderID == "" || input.ProductID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		itemRepo repository.OrderItemRepository,
	) error {
		// Bloquea la fila del pedido: serializa el recálculo del total por pedido
		order, err := orderRepo.GetForUpdate(input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}

		// Bloquea la fila del producto: serializa decremento de stock y fusión
		// de línea para llamadas concurrentes sobre el mismo par (pedido, producto)
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		// La disponibilidad se compara contra la cantidad literal solicitada,
		// sin descontar lo ya reservado en una línea existente
		if product.Stock < input.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		item, err := itemRepo.Get(input.OrderID, input.ProductID)
		if err != nil {
			return err
		}
		if item != nil {
			// Fusión: misma línea, más cantidad. El precio capturado no cambia.
			item.Quantity += input.Quantity
			if err := itemRepo.UpdateQuantity(input.OrderID, input.ProductID, item.Quantity); err != nil {
				return err
			}
		} else {
			item = &entity.OrderItem{
				OrderID:   input.OrderID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				Price:     money.Round2(product.Price),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := itemRepo.Create(item); err != nil {
				return err
			}
		}

		if err := productRepo.UpdateStock(input.ProductID, product.Stock-input.Quantity); err != nil {
			return err
		}

		// Total reconstruido desde cero con el conjunto actual de líneas
		items, err := itemRepo.ListByOrder(input.OrderID)
		if err != nil {
			return err
		}
		order.TotalAmount = money.OrderTotal(items)
		if err := orderRepo.UpdateTotal(input.OrderID, order.TotalAmount); err != nil {
			return err
		}

		order.Items = items
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
