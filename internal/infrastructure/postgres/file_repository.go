package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.FileRepository = (*FileRepo)(nil)

// FileRepo implementación de FileRepository (usable con pool o tx).
type FileRepo struct {
	q Querier
}

// NewFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFileRepository(q Querier) *FileRepo {
	return &FileRepo{q: q}
}

const fileColumns = `id, file_name, original_file_name, file_path, file_extension, file_size,
	content_type, category, entity_type, entity_id, description, uploaded_by, uploaded_at`

// Create persiste los metadatos de un adjunto.
func (r *FileRepo) Create(f *entity.FileAttachment) error {
	query := `
		INSERT INTO file_attachments (` + fileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.FileName, f.OriginalFileName, f.FilePath, f.FileExtension, f.FileSize,
		f.ContentType, f.Category, f.EntityType, f.EntityID, f.Description,
		f.UploadedBy, f.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert file attachment: %w", err)
	}
	return nil
}

// GetByID obtiene los metadatos de un adjunto.
func (r *FileRepo) GetByID(id string) (*entity.FileAttachment, error) {
	query := `SELECT ` + fileColumns + ` FROM file_attachments WHERE id = $1`
	var f entity.FileAttachment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.FileName, &f.OriginalFileName, &f.FilePath, &f.FileExtension, &f.FileSize,
		&f.ContentType, &f.Category, &f.EntityType, &f.EntityID, &f.Description,
		&f.UploadedBy, &f.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get file attachment: %w", err)
	}
	return &f, nil
}

// Delete elimina los metadatos de un adjunto.
func (r *FileRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM file_attachments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete file attachment: %w", err)
	}
	return nil
}

// List lista adjuntos con paginación (recientes primero).
func (r *FileRepo) List(limit, offset int) ([]*entity.FileAttachment, error) {
	query := `SELECT ` + fileColumns + ` FROM file_attachments ORDER BY uploaded_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list file attachments: %w", err)
	}
	defer rows.Close()
	return scanFiles(rows)
}

// ListByEntity lista los adjuntos asociados a una entidad.
func (r *FileRepo) ListByEntity(entityType, entityID string) ([]*entity.FileAttachment, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM file_attachments WHERE entity_type = $1 AND entity_id = $2 ORDER BY uploaded_at DESC`
	rows, err := r.q.Query(context.Background(), query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list file attachments by entity: %w", err)
	}
	defer rows.Close()
	return scanFiles(rows)
}

// ListByCategory lista los adjuntos de una categoría.
func (r *FileRepo) ListByCategory(category string) ([]*entity.FileAttachment, error) {
	query := `SELECT ` + fileColumns + ` FROM file_attachments WHERE category = $1 ORDER BY uploaded_at DESC`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("list file attachments by category: %w", err)
	}
	defer rows.Close()
	return scanFiles(rows)
}

func scanFiles(rows pgx.Rows) ([]*entity.FileAttachment, error) {
	var list []*entity.FileAttachment
	for rows.Next() {
		var f entity.FileAttachment
		if err := rows.Scan(&f.ID, &f.FileName, &f.OriginalFileName, &f.FilePath, &f.FileExtension,
			&f.FileSize, &f.ContentType, &f.Category, &f.EntityType, &f.EntityID, &f.Description,
			&f.UploadedBy, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan file attachment: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
