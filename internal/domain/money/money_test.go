package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/r-kh/AiTiGuru/internal/domain/entity"
	"github.com/r-kh/AiTiGuru/internal/domain/money"
)

// Round2 usa half-up: el empate se aleja de cero.
func TestRound2_HalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0.005", "0.01"},
		{"0.004", "0.00"},
		{"2.675", "2.68"},
		{"2.674", "2.67"},
		{"-0.005", "-0.01"},
		{"-2.675", "-2.68"},
		{"1599.98", "1599.98"},
		{"100", "100.00"},
	}
	for _, tc := range cases {
		got := money.Round2(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got.StringFixed(2), "Round2(%s)", tc.in)
	}
}

// El total de un pedido es Round2(Σ precio * cantidad) sobre todas sus líneas.
func TestOrderTotal(t *testing.T) {
	items := []*entity.OrderItem{
		{ProductID: "p1", Quantity: 2, Price: decimal.RequireFromString("500.00")},
		{ProductID: "p2", Quantity: 2, Price: decimal.RequireFromString("799.99")},
	}
	total := money.OrderTotal(items)
	assert.Equal(t, "2599.98", total.StringFixed(2))
}

func TestOrderTotal_SinLineas(t *testing.T) {
	assert.Equal(t, "0.00", money.OrderTotal(nil).StringFixed(2))
}

// El redondeo se aplica una sola vez sobre la suma, no por línea.
func TestOrderTotal_RedondeaSobreLaSuma(t *testing.T) {
	items := []*entity.OrderItem{
		{ProductID: "p1", Quantity: 1, Price: decimal.RequireFromString("0.33")},
		{ProductID: "p2", Quantity: 3, Price: decimal.RequireFromString("3.335")},
	}
	// 0.33 + 10.005 = 10.335 -> 10.34
	assert.Equal(t, "10.34", money.OrderTotal(items).StringFixed(2))
}
