package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// WorkLogRepository define el puerto de persistencia para WorkLog.
type WorkLogRepository interface {
	Create(log *entity.WorkLog) error
	GetByID(id string) (*entity.WorkLog, error)
	Update(log *entity.WorkLog) error
	Delete(id string) error
	ListByEmployee(employeeID string) ([]*entity.WorkLog, error)
	// GetOpenByEmployee devuelve la jornada sin check-out del empleado, si existe.
	GetOpenByEmployee(employeeID string) (*entity.WorkLog, error)
}
