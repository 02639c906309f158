package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo la cantidad en stock (disparador de alertas).
	UpdateStock(productID string, quantity int) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListAll devuelve el catálogo completo; lo usa el barrido de alertas.
	ListAll() ([]*entity.Product, error)
}
