package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/application/files"
	"github.com/tu-usuario/textil-crm/internal/domain"
)

// FileHandler maneja la subida y descarga de adjuntos (protegido).
type FileHandler struct {
	uc *files.UseCase
}

// NewFileHandler construye el handler.
func NewFileHandler(uc *files.UseCase) *FileHandler {
	return &FileHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir un archivo adjunto (multipart/form-data)
// @Tags         files
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Archivo"
// @Param        category     formData  string  false  "Categoría (Invoice, Contract, ProductImage, Report, Other)"
// @Param        entity_type  formData  string  false  "Entidad asociada"
// @Param        entity_id    formData  string  false  "ID de la entidad asociada"
// @Param        description  formData  string  false  "Descripción"
// @Success      201  {object}  dto.FileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/files [post]
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se requiere el campo file"})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer src.Close()

	in := files.UploadInput{
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Category:     c.FormValue("category"),
		EntityType:   c.FormValue("entity_type"),
		EntityID:     c.FormValue("entity_id"),
		Description:  c.FormValue("description"),
		UploadedBy:   GetUserID(c),
	}
	out, err := h.uc.Upload(in, src)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría de archivo no válida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Metadatos de un archivo
// @Tags         files
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del archivo"
// @Success      200  {object}  dto.FileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/files/{id} [get]
func (h *FileHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
	}
	return c.JSON(out)
}

// Download descarga el contenido con su nombre original.
// GET /api/files/:id/download
func (h *FileHandler) Download(c *fiber.Ctx) error {
	path, originalName, err := h.uc.Path(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Download(path, originalName)
}

// List godoc
// @Summary      Listar archivos (filtros: entity_type+entity_id, category)
// @Tags         files
// @Security     Bearer
// @Produce      json
// @Param        entity_type  query  string  false  "Entidad asociada"
// @Param        entity_id    query  string  false  "ID de la entidad"
// @Param        category     query  string  false  "Categoría"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.FileListResponse
// @Router       /api/files [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	if entityType, entityID := c.Query("entity_type"), c.Query("entity_id"); entityType != "" && entityID != "" {
		out, err := h.uc.ListByEntity(entityType, entityID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	if category := c.Query("category"); category != "" {
		out, err := h.uc.ListByCategory(category)
		if err != nil {
			if err == domain.ErrInvalidInput {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría de archivo no válida"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}

	out, err := h.uc.List(dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar archivo (disco y metadatos)
// @Tags         files
// @Security     Bearer
// @Param        id  path  string  true  "ID del archivo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/files/{id} [delete]
func (h *FileHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
