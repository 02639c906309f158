package entity

import "time"

// Tipos de alerta de stock. OverStock existe en el modelo pero el chequeo
// automático nunca lo genera; se crea solo por carga manual.
const (
	AlertTypeLowStock     = "LowStock"
	AlertTypeOutOfStock   = "OutOfStock"
	AlertTypeReorderPoint = "ReorderPoint"
	AlertTypeOverStock    = "OverStock"
)

// Estados de una alerta. Resolved e Ignored son terminales: una nueva rotura
// de umbral crea una alerta nueva, nunca reactiva una existente.
const (
	AlertStatusActive   = "Active"
	AlertStatusResolved = "Resolved"
	AlertStatusIgnored  = "Ignored"
)

// StockAlert registra que el stock de un producto cruzó un umbral definido.
// Invariante: como máximo una alerta Active por producto (verificado en el
// caso de uso, no por constraint).
type StockAlert struct {
	ID                string
	ProductID         string
	CurrentQuantity   int
	ThresholdQuantity int
	AlertType         string
	Status            string
	ResolvedDate      *time.Time
	ResolvedBy        string // ID del usuario que resolvió
	Notes             string
	CreatedAt         time.Time
}
