package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL de la aplicación. Se aplica al arranque (idempotente).
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id         UUID PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	parent_id  UUID REFERENCES categories(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	category_id UUID REFERENCES categories(id),
	name        VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	stock       BIGINT NOT NULL CHECK (stock >= 0),
	price       NUMERIC(11,2) NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS clients (
	id         UUID PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	address    VARCHAR(255) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id           UUID PRIMARY KEY,
	client_id    UUID NOT NULL REFERENCES clients(id),
	status       VARCHAR(50) NOT NULL,
	total_amount NUMERIC(11,2) NOT NULL DEFAULT 0,
	order_date   TIMESTAMPTZ NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id   UUID NOT NULL REFERENCES orders(id),
	product_id UUID NOT NULL REFERENCES products(id),
	quantity   BIGINT NOT NULL CHECK (quantity > 0),
	price      NUMERIC(11,2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (order_id, product_id)
);

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	name          VARCHAR(255) NOT NULL,
	status        VARCHAR(50) NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
`

// InitSchema crea las tablas si no existen (equivalente al init de BD al arranque).
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
