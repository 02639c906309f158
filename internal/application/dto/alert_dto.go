package dto

import "time"

// CreateStockAlertRequest entrada para crear una alerta manual (ej. OverStock).
type CreateStockAlertRequest struct {
	ProductID         string `json:"product_id" validate:"required"`
	CurrentQuantity   int    `json:"current_quantity"`
	ThresholdQuantity int    `json:"threshold_quantity"`
	AlertType         string `json:"alert_type" validate:"required"`
	Notes             string `json:"notes"`
}

// ResolveAlertRequest entrada para resolver una alerta.
type ResolveAlertRequest struct {
	ResolvedBy string `json:"resolved_by"`
	Notes      string `json:"notes"`
}

// StockAlertResponse salida de una alerta de stock.
type StockAlertResponse struct {
	ID                string     `json:"id"`
	ProductID         string     `json:"product_id"`
	CurrentQuantity   int        `json:"current_quantity"`
	ThresholdQuantity int        `json:"threshold_quantity"`
	AlertType         string     `json:"alert_type"`
	Status            string     `json:"status"`
	ResolvedDate      *time.Time `json:"resolved_date,omitempty"`
	ResolvedBy        string     `json:"resolved_by,omitempty"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
}

// StockAlertListResponse lista de alertas.
type StockAlertListResponse struct {
	Items []StockAlertResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
