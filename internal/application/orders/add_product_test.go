package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r-kh/AiTiGuru/internal/application/orders"
	"github.com/r-kh/AiTiGuru/internal/domain"
	"github.com/r-kh/AiTiGuru/internal/domain/entity"
	"github.com/r-kh/AiTiGuru/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica todo-o-nada
// ──────────────────────────────────────────────────────────────────────────────

// memState estado compartido de los fakes. El runner trabaja sobre una copia
// y solo la vuelca al estado real en el "commit", igual que la transacción SQL.
type memState struct {
	orders   map[string]entity.Order
	products map[string]entity.Product
	items    map[string]entity.OrderItem // clave orderID|productID
	itemSeq  []string                    // orden de inserción de las líneas
}

func newMemState() *memState {
	return &memState{
		orders:   make(map[string]entity.Order),
		products: make(map[string]entity.Product),
		items:    make(map[string]entity.OrderItem),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	c.itemSeq = append([]string(nil), s.itemSeq...)
	return c
}

func itemKey(orderID, productID string) string { return orderID + "|" + productID }

type memOrderRepo struct{ s *memState }

func (r *memOrderRepo) Create(o *entity.Order) error {
	r.s.orders[o.ID] = *o
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *memOrderRepo) GetForUpdate(id string) (*entity.Order, error) { return r.GetByID(id) }

func (r *memOrderRepo) UpdateTotal(orderID string, total decimal.Decimal) error {
	o, ok := r.s.orders[orderID]
	if !ok {
		return errors.New("order missing")
	}
	o.TotalAmount = total
	r.s.orders[orderID] = o
	return nil
}

type memProductRepo struct{ s *memState }

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) UpdateStock(productID string, stock int64) error {
	p, ok := r.s.products[productID]
	if !ok {
		return errors.New("product missing")
	}
	p.Stock = stock
	r.s.products[productID] = p
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

type memItemRepo struct{ s *memState }

func (r *memItemRepo) Get(orderID, productID string) (*entity.OrderItem, error) {
	it, ok := r.s.items[itemKey(orderID, productID)]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memItemRepo) Create(item *entity.OrderItem) error {
	key := itemKey(item.OrderID, item.ProductID)
	if _, ok := r.s.items[key]; ok {
		return domain.ErrDuplicate
	}
	r.s.items[key] = *item
	r.s.itemSeq = append(r.s.itemSeq, key)
	return nil
}

func (r *memItemRepo) UpdateQuantity(orderID, productID string, quantity int64) error {
	key := itemKey(orderID, productID)
	it, ok := r.s.items[key]
	if !ok {
		return errors.New("item missing")
	}
	it.Quantity = quantity
	r.s.items[key] = it
	return nil
}

func (r *memItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, key := range r.s.itemSeq {
		it := r.s.items[key]
		if it.OrderID == orderID {
			cp := it
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memTxRunner ejecuta fn sobre una copia del estado; el commit (volcar la copia)
// solo ocurre si fn no falla y failCommit no está activo.
type memTxRunner struct {
	s          *memState
	failCommit bool
	runs       int
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	itemRepo repository.OrderItemRepository,
) error) error {
	r.runs++
	work := r.s.clone()
	err := fn(&memOrderRepo{s: work}, &memProductRepo{s: work}, &memItemRepo{s: work})
	if err != nil {
		return err
	}
	if r.failCommit {
		return domain.ErrPersistence
	}
	*r.s = *work
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	orderID   = "order-1"
	productTV = "product-tv"
	productWM = "product-wm"
	missingID = "does-not-exist"
	clientID  = "client-1"
)

// seedState pedido NEW vacío + SONY TV stock 10 @ 500.00 + BOSCH WM stock 5 @ 799.99.
func seedState(t *testing.T) *memState {
	t.Helper()
	s := newMemState()
	s.orders[orderID] = entity.Order{
		ID:          orderID,
		ClientID:    clientID,
		Status:      entity.OrderStatusNew,
		TotalAmount: decimal.Zero,
	}
	s.products[productTV] = entity.Product{
		ID:    productTV,
		Name:  "SONY TV",
		Stock: 10,
		Price: decimal.RequireFromString("500.00"),
	}
	s.products[productWM] = entity.Product{
		ID:    productWM,
		Name:  "BOSCH WM",
		Stock: 5,
		Price: decimal.RequireFromString("799.99"),
	}
	return s
}

func addProduct(t *testing.T, uc *orders.AddProductUseCase, productID string, qty int64) (*entity.Order, error) {
	t.Helper()
	return uc.AddProduct(context.Background(), orders.AddProductInput{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  qty,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Primera adición: crea la línea con el precio capturado, descuenta stock
// y deja el total en 1000.00.
func TestAddProduct_CreaLineaYDescuentaStock(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	order, err := addProduct(t, uc, productTV, 2)
	require.NoError(t, err)
	require.NotNil(t, order)

	require.Len(t, order.Items, 1)
	assert.EqualValues(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "500.00", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, "1000.00", order.TotalAmount.StringFixed(2))
	assert.EqualValues(t, 8, s.products[productTV].Stock, "el stock debe quedar en 8")
	assert.Equal(t, "1000.00", s.orders[orderID].TotalAmount.StringFixed(2), "el total debe persistirse")
}

// Adiciones repetidas del mismo producto se fusionan en una sola línea:
// nunca hay dos líneas para el mismo par (pedido, producto).
func TestAddProduct_FusionaLineaExistente(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	_, err := addProduct(t, uc, productTV, 2)
	require.NoError(t, err)
	order, err := addProduct(t, uc, productTV, 3)
	require.NoError(t, err)

	require.Len(t, order.Items, 1, "debe seguir habiendo una sola línea")
	assert.EqualValues(t, 5, order.Items[0].Quantity)
	assert.Equal(t, "2500.00", order.TotalAmount.StringFixed(2))
	assert.EqualValues(t, 5, s.products[productTV].Stock)
}

// Pedir más que el stock disponible rechaza la llamada completa sin mutar nada.
func TestAddProduct_StockInsuficienteNoMutaNada(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	order, err := addProduct(t, uc, productWM, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, order)

	assert.EqualValues(t, 5, s.products[productWM].Stock, "el stock no debe cambiar")
	assert.Empty(t, s.items, "no debe crearse ninguna línea")
	assert.Equal(t, "0.00", s.orders[orderID].TotalAmount.StringFixed(2))
}

// La disponibilidad se compara contra la cantidad literal solicitada,
// aun cuando parte del stock ya esté en una línea del mismo pedido.
func TestAddProduct_DisponibilidadContraIncrementoLiteral(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	_, err := addProduct(t, uc, productWM, 3)
	require.NoError(t, err)

	// Quedan 2 en stock; pedir 3 más falla aunque la línea ya tenga 3
	_, err = addProduct(t, uc, productWM, 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 2, s.products[productWM].Stock)
	assert.EqualValues(t, 3, s.items[itemKey(orderID, productWM)].Quantity)
}

// Pedido inexistente.
func TestAddProduct_PedidoNoEncontrado(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	_, err := uc.AddProduct(context.Background(), orders.AddProductInput{
		OrderID:   missingID,
		ProductID: productTV,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

// Producto inexistente.
func TestAddProduct_ProductoNoEncontrado(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	_, err := addProduct(t, uc, missingID, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Cantidades no positivas fallan antes de abrir la transacción.
func TestAddProduct_CantidadInvalida(t *testing.T) {
	s := seedState(t)
	runner := &memTxRunner{s: s}
	uc := orders.NewAddProductUseCase(runner)

	for _, qty := range []int64{0, -1} {
		_, err := addProduct(t, uc, productTV, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, runner.runs, "no debe abrirse ninguna transacción")
}

// El total se reconstruye desde todas las líneas: 2*500.00 + 2*799.99 = 2599.98.
func TestAddProduct_TotalConVariosProductos(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	_, err := addProduct(t, uc, productTV, 2)
	require.NoError(t, err)
	order, err := addProduct(t, uc, productWM, 2)
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "2599.98", order.TotalAmount.StringFixed(2))
}

// Si el commit falla no queda rastro de la operación: ni stock, ni línea, ni total.
func TestAddProduct_CommitFallidoNoPersisteNada(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s, failCommit: true})

	order, err := addProduct(t, uc, productTV, 2)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Nil(t, order)

	assert.EqualValues(t, 10, s.products[productTV].Stock)
	assert.Empty(t, s.items)
	assert.Equal(t, "0.00", s.orders[orderID].TotalAmount.StringFixed(2))
}

// El precio de una línea se captura al crearla: subir el precio del producto
// después no cambia la línea ni el total recalculado para ella.
func TestAddProduct_PrecioCapturadoInmutable(t *testing.T) {
	s := seedState(t)
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	_, err := addProduct(t, uc, productTV, 2)
	require.NoError(t, err)

	// Sube el precio del producto fuera de la transacción
	p := s.products[productTV]
	p.Price = decimal.RequireFromString("999.99")
	s.products[productTV] = p

	order, err := addProduct(t, uc, productTV, 1)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "500.00", order.Items[0].Price.StringFixed(2), "el precio capturado no debe cambiar")
	assert.Equal(t, "1500.00", order.TotalAmount.StringFixed(2), "el total usa el precio capturado")
}

// El precio del producto se redondea half-up al capturarlo en la línea.
func TestAddProduct_RedondeaPrecioAlCapturar(t *testing.T) {
	s := seedState(t)
	p := s.products[productTV]
	p.Price = decimal.RequireFromString("19.995")
	s.products[productTV] = p
	uc := orders.NewAddProductUseCase(&memTxRunner{s: s})

	order, err := addProduct(t, uc, productTV, 1)
	require.NoError(t, err)

	assert.Equal(t, "20.00", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, "20.00", order.TotalAmount.StringFixed(2))
}
