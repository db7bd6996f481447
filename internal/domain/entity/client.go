package entity

import "time"

// Client representa un cliente que realiza pedidos.
type Client struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
