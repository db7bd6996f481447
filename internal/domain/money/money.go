package money

import (
	"github.com/shopspring/decimal"

	"github.com/r-kh/AiTiGuru/internal/domain/entity"
)

// Round2 redondea a 2 decimales con half-up (el empate se aleja de cero: 0.005 -> 0.01).
// decimal.Round implementa exactamente esa regla, sin pasar por float binario.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// OrderTotal recalcula el total de un pedido desde cero a partir de sus líneas:
// Round2(Σ precio_línea * cantidad). Siempre se reconstruye completo, nunca se
// ajusta incrementalmente, para evitar deriva por acumulación de redondeos.
func OrderTotal(items []*entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return Round2(total)
}
