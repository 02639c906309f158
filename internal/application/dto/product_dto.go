package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code          string          `json:"code" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Category      string          `json:"category" validate:"required"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
// El stock no se toca aquí: va por el endpoint de stock para disparar alertas.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// UpdateStockRequest entrada del endpoint de actualización de stock.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
