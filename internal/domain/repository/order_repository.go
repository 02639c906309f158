package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	Update(order *entity.Order) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Order, error)
	ListByCustomer(customerID string) ([]*entity.Order, error)
}
