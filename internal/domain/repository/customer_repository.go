package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Customer, error)
}
