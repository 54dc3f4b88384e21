package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

// InvoicePDFGenerator puerto del generador de la factura en PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, order *entity.Order, customer *entity.Customer) ([]byte, error)
}

// PDFUseCase genera la factura descargable de un pedido del historial.
type PDFUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(orders repository.OrderRepository, customers repository.CustomerRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{orders: orders, customers: customers, generator: generator}
}

// DownloadInvoice localiza el pedido por número, verifica la propiedad y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
//   - domain.ErrForbidden        si el pedido no pertenece al cliente de la sesión.
func (uc *PDFUseCase) DownloadInvoice(ctx context.Context, customerID, orderNumber string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orders.GetByNumber(orderNumber)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.CustomerID != customerID {
		return nil, "", domain.ErrForbidden
	}

	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, order, customer)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice-%s.pdf", order.OrderNumber), nil
}
