package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Employee, error)
	ListByDepartment(department string) ([]*entity.Employee, error)
}
