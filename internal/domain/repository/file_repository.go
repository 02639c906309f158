package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// FileRepository define el puerto de persistencia para los metadatos de archivos.
type FileRepository interface {
	Create(file *entity.FileAttachment) error
	GetByID(id string) (*entity.FileAttachment, error)
	Delete(id string) error
	List(limit, offset int) ([]*entity.FileAttachment, error)
	ListByEntity(entityType, entityID string) ([]*entity.FileAttachment, error)
	ListByCategory(category string) ([]*entity.FileAttachment, error)
}
