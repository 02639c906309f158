package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// fileCategories categorías válidas de adjuntos.
var fileCategories = map[string]bool{
	entity.FileCategoryInvoice:        true,
	entity.FileCategoryPaymentReceipt: true,
	entity.FileCategoryDesignFile:     true,
	entity.FileCategoryProductImage:   true,
	entity.FileCategoryOrderDocument:  true,
	entity.FileCategoryContract:       true,
	entity.FileCategoryOther:          true,
}

// UploadInput metadatos que acompañan al contenido subido.
type UploadInput struct {
	OriginalName string
	ContentType  string
	Category     string
	EntityType   string
	EntityID     string
	Description  string
	UploadedBy   string
}

// UseCase casos de uso de archivos adjuntos. El contenido se guarda en disco
// bajo uploadDir con nombre uuid; los metadatos van a la base de datos.
type UseCase struct {
	repo      repository.FileRepository
	uploadDir string
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.FileRepository, uploadDir string, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, uploadDir: uploadDir, log: log.Component("files")}
}

// Upload guarda el contenido en disco y registra los metadatos.
func (uc *UseCase) Upload(in UploadInput, content io.Reader) (*dto.FileResponse, error) {
	if in.OriginalName == "" {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = entity.FileCategoryOther
	}
	if !fileCategories[category] {
		return nil, domain.ErrInvalidInput
	}

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("files: creando directorio de subida: %w", err)
	}

	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(in.OriginalName))
	storedName := id + ext
	fullPath := filepath.Join(uc.uploadDir, storedName)

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("files: creando archivo: %w", err)
	}
	size, err := io.Copy(dst, content)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("files: guardando contenido: %w", err)
	}

	file := &entity.FileAttachment{
		ID:               id,
		FileName:         storedName,
		OriginalFileName: in.OriginalName,
		FilePath:         fullPath,
		FileExtension:    ext,
		FileSize:         size,
		ContentType:      in.ContentType,
		Category:         category,
		EntityType:       in.EntityType,
		EntityID:         in.EntityID,
		Description:      in.Description,
		UploadedBy:       in.UploadedBy,
		UploadedAt:       time.Now(),
	}
	if err := uc.repo.Create(file); err != nil {
		os.Remove(fullPath)
		return nil, err
	}
	uc.log.Info().Str("file_id", file.ID).Str("name", in.OriginalName).Int64("size", size).Msg("archivo subido")
	return toFileResponse(file), nil
}

// GetByID obtiene los metadatos de un adjunto.
func (uc *UseCase) GetByID(id string) (*dto.FileResponse, error) {
	file, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, nil
	}
	return toFileResponse(file), nil
}

// Path devuelve la ruta en disco de un adjunto, para servir la descarga.
func (uc *UseCase) Path(id string) (path, originalName string, err error) {
	file, err := uc.repo.GetByID(id)
	if err != nil {
		return "", "", err
	}
	if file == nil {
		return "", "", domain.ErrNotFound
	}
	return file.FilePath, file.OriginalFileName, nil
}

// List lista adjuntos con paginación.
func (uc *UseCase) List(page dto.PageRequest) (*dto.FileListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.FileListResponse{
		Items: toFileItems(list),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByEntity lista los adjuntos asociados a una entidad.
func (uc *UseCase) ListByEntity(entityType, entityID string) ([]dto.FileResponse, error) {
	list, err := uc.repo.ListByEntity(entityType, entityID)
	if err != nil {
		return nil, err
	}
	return toFileItems(list), nil
}

// ListByCategory lista los adjuntos de una categoría.
func (uc *UseCase) ListByCategory(category string) ([]dto.FileResponse, error) {
	if !fileCategories[category] {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	return toFileItems(list), nil
}

// Delete elimina el archivo físico y su registro. Si el archivo ya no está
// en disco solo se borra el registro.
func (uc *UseCase) Delete(id string) error {
	file, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if file == nil {
		return domain.ErrNotFound
	}
	if err := os.Remove(file.FilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("files: eliminando archivo: %w", err)
	}
	return uc.repo.Delete(id)
}

func toFileResponse(f *entity.FileAttachment) *dto.FileResponse {
	if f == nil {
		return nil
	}
	return &dto.FileResponse{
		ID:               f.ID,
		FileName:         f.FileName,
		OriginalFileName: f.OriginalFileName,
		FileExtension:    f.FileExtension,
		FileSize:         f.FileSize,
		ContentType:      f.ContentType,
		Category:         f.Category,
		EntityType:       f.EntityType,
		EntityID:         f.EntityID,
		Description:      f.Description,
		UploadedBy:       f.UploadedBy,
		UploadedAt:       f.UploadedAt,
	}
}

func toFileItems(list []*entity.FileAttachment) []dto.FileResponse {
	items := make([]dto.FileResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFileResponse(f))
	}
	return items
}
