package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/orders"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/infrastructure/gateway"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCustomerID = "cust-1"

// fakeOrderRepo repositorio de pedidos en memoria para los tests.
type fakeOrderRepo struct {
	orders []*entity.Order
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetByNumber(number string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func seedLedger() *fakeOrderRepo {
	return &fakeOrderRepo{orders: []*entity.Order{
		{
			ID: "o-1", CustomerID: testCustomerID, OrderNumber: "PUR-2024-003",
			Status: entity.OrderStatusProcessing, Total: decimal.NewFromFloat(89.99),
			Items: []entity.OrderItem{
				{ID: "i-1", OrderID: "o-1", Name: "Organic Coffee Beans", Quantity: 2, Price: decimal.NewFromFloat(24.99)},
				{ID: "i-2", OrderID: "o-1", Name: "Ceramic Mug", Quantity: 1, Price: decimal.NewFromFloat(40.01)},
			},
		},
		{
			ID: "o-2", CustomerID: testCustomerID, OrderNumber: "PUR-2024-002",
			Status: entity.OrderStatusShipped, Total: decimal.NewFromFloat(45.50),
			TrackingNumber: "CP123456789CA",
			Items: []entity.OrderItem{
				{ID: "i-3", OrderID: "o-2", Name: "Green Tea", Quantity: 3, Price: decimal.NewFromFloat(15.16)},
			},
		},
		{
			ID: "o-3", CustomerID: testCustomerID, OrderNumber: "PUR-2024-001",
			Status: entity.OrderStatusDelivered, Total: decimal.NewFromFloat(120.00),
			Items: []entity.OrderItem{
				{ID: "i-4", OrderID: "o-3", Name: "French Press", Quantity: 1, Price: decimal.NewFromFloat(120.00)},
			},
		},
		{
			ID: "o-4", CustomerID: "otro-cliente", OrderNumber: "PUR-2024-900",
			Status: entity.OrderStatusDelivered, Total: decimal.NewFromFloat(10.00),
		},
	}}
}

func buildUseCase(repo *fakeOrderRepo, cart *gateway.CartStub) *orders.UseCase {
	if cart == nil {
		cart = gateway.NewCartStub(nil, 0)
	}
	return orders.NewUseCase(repo, cart, gateway.NewCanadaPostTracking(), nil, time.Second)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — filtro conjuntivo + conteos derivados
// ──────────────────────────────────────────────────────────────────────────────

func TestList_SinFiltrosDevuelveTodoConConteos(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)

	out, err := uc.List(testCustomerID, dto.OrderListRequest{})
	require.NoError(t, err)

	assert.Len(t, out.Orders, 3, "solo los pedidos del cliente de la sesión")
	assert.Equal(t, 3, out.Counts.All)
	assert.Equal(t, 1, out.Counts.Processing)
	assert.Equal(t, 1, out.Counts.Shipped)
	assert.Equal(t, 1, out.Counts.Delivered)
	assert.Equal(t, 0, out.Counts.Cancelled)
}

func TestList_ConteosSobreElConjuntoSinFiltrar(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)

	out, err := uc.List(testCustomerID, dto.OrderListRequest{Status: "shipped"})
	require.NoError(t, err)

	assert.Len(t, out.Orders, 1, "la lista respeta el filtro de estado")
	assert.Equal(t, 3, out.Counts.All, "los conteos se derivan del conjunto sin filtrar")
	suma := out.Counts.Processing + out.Counts.Shipped + out.Counts.Delivered + out.Counts.Cancelled
	assert.Equal(t, out.Counts.All, suma)
}

func TestList_BusquedaConjuntiva(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)

	// "coffee" aparece en un pedido processing; con filtro shipped no hay resultados.
	out, err := uc.List(testCustomerID, dto.OrderListRequest{Status: "shipped", Search: "coffee"})
	require.NoError(t, err)
	assert.Empty(t, out.Orders)

	out, err = uc.List(testCustomerID, dto.OrderListRequest{Status: "all", Search: "coffee"})
	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	assert.Equal(t, "PUR-2024-003", out.Orders[0].OrderNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reorder — solicitud al carrito, nunca mutación del ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestReorder_PedidoCompleto(t *testing.T) {
	repo := seedLedger()
	uc := buildUseCase(repo, nil)

	out, err := uc.Reorder(context.Background(), testCustomerID, "o-1", dto.ReorderRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Items)
	assert.Equal(t, "Order PUR-2024-003 has been added to your cart", out.Message)

	// El ledger queda intacto.
	stored, _ := repo.GetByID("o-1")
	assert.Equal(t, entity.OrderStatusProcessing, stored.Status)
}

func TestReorder_UnaSolaLinea(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)

	out, err := uc.Reorder(context.Background(), testCustomerID, "o-1", dto.ReorderRequest{ItemID: "i-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Items)
}

func TestReorder_LineaInexistente(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)
	_, err := uc.Reorder(context.Background(), testCustomerID, "o-1", dto.ReorderRequest{ItemID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReorder_FalloDelCarrito(t *testing.T) {
	cart := gateway.NewCartStub(nil, 0)
	cart.Fail = errors.New("cart service down")
	uc := buildUseCase(seedLedger(), cart)

	_, err := uc.Reorder(context.Background(), testCustomerID, "o-1", dto.ReorderRequest{})
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestReorder_PedidoDeOtroCliente(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)
	_, err := uc.Reorder(context.Background(), testCustomerID, "o-4", dto.ReorderRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel — processing → cancelled, el resto es conflicto
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_PedidoEnProcessing(t *testing.T) {
	repo := seedLedger()
	uc := buildUseCase(repo, nil)

	out, err := uc.Cancel(testCustomerID, "o-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, out.Status)

	stored, _ := repo.GetByID("o-1")
	assert.Equal(t, entity.OrderStatusCancelled, stored.Status)
}

func TestCancel_PedidoShippedEsConflicto(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)
	_, err := uc.Cancel(testCustomerID, "o-2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tracking
// ──────────────────────────────────────────────────────────────────────────────

func TestTracking_ConGuia(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)

	out, err := uc.Tracking(testCustomerID, "o-2")
	require.NoError(t, err)
	assert.Equal(t, "CP123456789CA", out.TrackingNumber)
	assert.Contains(t, out.URL, "canadapost.ca")
	assert.Contains(t, out.URL, "CP123456789CA")
}

func TestTracking_SinGuia(t *testing.T) {
	uc := buildUseCase(seedLedger(), nil)
	_, err := uc.Tracking(testCustomerID, "o-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
