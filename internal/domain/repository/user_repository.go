package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Sustituye al antiguo store estático de usuarios: la instancia se construye
// e inyecta explícitamente, nunca se inicializa de forma perezosa/global.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByRole(role string) ([]*entity.User, error)
}
