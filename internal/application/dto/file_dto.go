package dto

import "time"

// FileResponse salida de los metadatos de un adjunto.
type FileResponse struct {
	ID               string    `json:"id"`
	FileName         string    `json:"file_name"`
	OriginalFileName string    `json:"original_file_name"`
	FileExtension    string    `json:"file_extension"`
	FileSize         int64     `json:"file_size"`
	ContentType      string    `json:"content_type"`
	Category         string    `json:"category"`
	EntityType       string    `json:"entity_type"`
	EntityID         string    `json:"entity_id"`
	Description      string    `json:"description"`
	UploadedBy       string    `json:"uploaded_by"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// FileListResponse lista de adjuntos.
type FileListResponse struct {
	Items []FileResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
