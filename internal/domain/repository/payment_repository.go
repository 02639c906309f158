package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Payment, error)
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	ListByMethod(method string) ([]*entity.Payment, error)
	ListByStatus(status string) ([]*entity.Payment, error)
}
