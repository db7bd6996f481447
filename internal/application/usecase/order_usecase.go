package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/r-kh/AiTiGuru/internal/application/dto"
	"github.com/r-kh/AiTiGuru/internal/domain"
	"github.com/r-kh/AiTiGuru/internal/domain/entity"
	"github.com/r-kh/AiTiGuru/internal/domain/repository"
)

// OrderUseCase creación y consulta de pedidos. Las líneas se agregan con
// orders.AddProductUseCase; aquí nunca se toca TotalAmount directamente.
type OrderUseCase struct {
	orderRepo  repository.OrderRepository
	itemRepo   repository.OrderItemRepository
	clientRepo repository.ClientRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	clientRepo repository.ClientRepository,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, itemRepo: itemRepo, clientRepo: clientRepo}
}

// Create crea un pedido vacío en estado NEW para un cliente existente.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Status:      entity.OrderStatusNew,
		TotalAmount: decimal.Zero,
		OrderDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(order), nil
}

// GetByID obtiene un pedido con sus líneas. Devuelve nil si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.itemRepo.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return dto.ToOrderResponse(order), nil
}
