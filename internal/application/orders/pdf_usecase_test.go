package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/customer-portal/internal/application/orders"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeCustomerDirectory directorio de clientes mínimo para la factura.
type fakeCustomerDirectory struct {
	customer *entity.Customer
}

func (r *fakeCustomerDirectory) Create(*entity.Customer) error { return nil }

func (r *fakeCustomerDirectory) GetByID(id string) (*entity.Customer, error) {
	if r.customer == nil || r.customer.ID != id {
		return nil, nil
	}
	return r.customer, nil
}

func (r *fakeCustomerDirectory) GetByEmail(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerDirectory) UpdateProfile(*entity.Customer) error        { return nil }
func (r *fakeCustomerDirectory) UpdateAddress(*entity.Customer) error        { return nil }
func (r *fakeCustomerDirectory) UpdatePassword(string, string) error         { return nil }

// fakeInvoiceGenerator registra las invocaciones y devuelve bytes fijos.
type fakeInvoiceGenerator struct {
	calls int
}

func (g *fakeInvoiceGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.Order, _ *entity.Customer) ([]byte, error) {
	g.calls++
	return []byte("%PDF-1.7"), nil
}

func buildPDFUseCase(customer *entity.Customer) (*orders.PDFUseCase, *fakeInvoiceGenerator) {
	gen := &fakeInvoiceGenerator{}
	uc := orders.NewPDFUseCase(seedLedger(), &fakeCustomerDirectory{customer: customer}, gen)
	return uc, gen
}

// ──────────────────────────────────────────────────────────────────────────────
// DownloadInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadInvoice_GeneraPDFConNombreDeArchivo(t *testing.T) {
	uc, gen := buildPDFUseCase(&entity.Customer{ID: testCustomerID, FirstName: "Ana", LastName: "Gómez"})

	pdfBytes, filename, err := uc.DownloadInvoice(context.Background(), testCustomerID, "PUR-2024-003")

	require.NoError(t, err)
	assert.Equal(t, "invoice-PUR-2024-003.pdf", filename)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, 1, gen.calls)
}

func TestDownloadInvoice_PedidoInexistente(t *testing.T) {
	uc, gen := buildPDFUseCase(&entity.Customer{ID: testCustomerID})

	_, _, err := uc.DownloadInvoice(context.Background(), testCustomerID, "PUR-9999-000")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, gen.calls, "no se genera PDF para un pedido inexistente")
}

func TestDownloadInvoice_PedidoDeOtroCliente(t *testing.T) {
	uc, _ := buildPDFUseCase(&entity.Customer{ID: testCustomerID})

	_, _, err := uc.DownloadInvoice(context.Background(), testCustomerID, "PUR-2024-900")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDownloadInvoice_ClienteInexistente(t *testing.T) {
	uc, gen := buildPDFUseCase(nil)

	_, _, err := uc.DownloadInvoice(context.Background(), testCustomerID, "PUR-2024-003")

	assert.ErrorIs(t, err, domain.ErrNotFound,
		"cliente ausente responde not found, no un error interno")
	assert.Zero(t, gen.calls)
}
