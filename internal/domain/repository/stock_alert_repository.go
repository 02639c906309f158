package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// StockAlertRepository define el puerto de persistencia para StockAlert.
type StockAlertRepository interface {
	Create(alert *entity.StockAlert) error
	GetByID(id string) (*entity.StockAlert, error)
	Update(alert *entity.StockAlert) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.StockAlert, error)
	ListActive() ([]*entity.StockAlert, error)
	ListByProduct(productID string) ([]*entity.StockAlert, error)
	ListByType(alertType string) ([]*entity.StockAlert, error)
	// HasActiveByProduct indica si el producto ya tiene una alerta Active
	// (supresión de duplicados del chequeo de umbrales).
	HasActiveByProduct(productID string) (bool, error)
}
