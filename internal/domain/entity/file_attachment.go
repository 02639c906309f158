package entity

import "time"

// Categorías de archivos adjuntos.
const (
	FileCategoryInvoice        = "Invoice"
	FileCategoryPaymentReceipt = "PaymentReceipt"
	FileCategoryDesignFile     = "DesignFile"
	FileCategoryProductImage   = "ProductImage"
	FileCategoryOrderDocument  = "OrderDocument"
	FileCategoryContract       = "Contract"
	FileCategoryOther          = "Other"
)

// FileAttachment representa un archivo subido y asociado a una entidad
// (pedido, factura, producto...). FileName es el nombre físico en disco
// (uuid + extensión); OriginalFileName el nombre con que se subió.
type FileAttachment struct {
	ID               string
	FileName         string
	OriginalFileName string
	FilePath         string
	FileExtension    string
	FileSize         int64
	ContentType      string
	Category         string
	EntityType       string
	EntityID         string
	Description      string
	UploadedBy       string
	UploadedAt       time.Time
}
