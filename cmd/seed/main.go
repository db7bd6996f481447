// seed puebla la base con datos de demostración: un usuario para la API,
// categorías, productos con stock inicial, clientes y pedidos vacíos en estado NEW.
//
// Uso: go run ./cmd/seed
// Imprime los IDs creados para poder probar la API a mano.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/r-kh/AiTiGuru/internal/domain"
	"github.com/r-kh/AiTiGuru/internal/domain/entity"
	"github.com/r-kh/AiTiGuru/internal/infrastructure/postgres"
	"github.com/r-kh/AiTiGuru/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "inicializar esquema: %v\n", err)
		os.Exit(1)
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        "demo@aitiguru.local",
		PasswordHash: string(hash),
		Name:         "Demo",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch err := userRepo.Create(user); {
	case err == nil:
		fmt.Printf("user: %s (demo@aitiguru.local / demo1234)\n", user.ID)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		fmt.Println("user: demo@aitiguru.local ya existe, se omite")
	default:
		fmt.Fprintf(os.Stderr, "crear usuario demo: %v\n", err)
		os.Exit(1)
	}

	catTV := &entity.Category{ID: uuid.New().String(), Name: "Televisores", CreatedAt: now}
	catWM := &entity.Category{ID: uuid.New().String(), Name: "Lavadoras", CreatedAt: now}
	for _, c := range []*entity.Category{catTV, catWM} {
		if err := categoryRepo.Create(c); err != nil {
			fmt.Fprintf(os.Stderr, "crear categoría %s: %v\n", c.Name, err)
			os.Exit(1)
		}
	}

	products := []*entity.Product{
		{
			ID:         uuid.New().String(),
			CategoryID: catTV.ID,
			Name:       "SONY TV",
			Stock:      10,
			Price:      decimal.RequireFromString("500.00"),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.New().String(),
			CategoryID: catWM.ID,
			Name:       "BOSCH WM",
			Stock:      5,
			Price:      decimal.RequireFromString("799.99"),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", p.Name, err)
			os.Exit(1)
		}
	}

	clients := []*entity.Client{
		{ID: uuid.New().String(), Name: "OOO Romashka", Address: "Moscú, ul. Lenina 10", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "IP Petrov", Address: "San Petersburgo, Nevsky pr. 5", CreatedAt: now, UpdatedAt: now},
	}
	for _, c := range clients {
		if err := clientRepo.Create(c); err != nil {
			fmt.Fprintf(os.Stderr, "crear cliente %s: %v\n", c.Name, err)
			os.Exit(1)
		}
	}

	for i, c := range clients {
		order := &entity.Order{
			ID:          uuid.New().String(),
			ClientID:    c.ID,
			Status:      entity.OrderStatusNew,
			TotalAmount: decimal.Zero,
			OrderDate:   now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := orderRepo.Create(order); err != nil {
			fmt.Fprintf(os.Stderr, "crear pedido: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("order %d: %s (client %s)\n", i+1, order.ID, c.Name)
	}

	for _, p := range products {
		fmt.Printf("product: %s  %s (stock %d, price %s)\n", p.ID, p.Name, p.Stock, p.Price.StringFixed(2))
	}
	fmt.Println("Seed data added!")
}
