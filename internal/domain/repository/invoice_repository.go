package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(invoiceNumber string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Invoice, error)
	ListByCustomer(customerID string) ([]*entity.Invoice, error)
	ListByOrder(orderID string) ([]*entity.Invoice, error)
	ListByStatus(status string) ([]*entity.Invoice, error)
}
