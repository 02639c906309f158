package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del catálogo textil.
const (
	CategoryFabric          = "Fabric"
	CategoryThread          = "Thread"
	CategoryButton          = "Button"
	CategoryZipper          = "Zipper"
	CategoryAccessory       = "Accessory"
	CategoryFinishedProduct = "FinishedProduct"
	CategoryOther           = "Other"
)

// Product representa un artículo del inventario (tela, hilo, accesorio o producto terminado).
// StockQuantity es el stock global; las alertas de stock se derivan de este valor.
type Product struct {
	ID            string
	Code          string // código único de catálogo
	Name          string
	Description   string
	Category      string
	UnitPrice     decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
