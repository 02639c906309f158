package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Departamentos de la planta y la administración.
const (
	DeptManagement     = "Management"
	DeptSales          = "Sales"
	DeptProduction     = "Production"
	DeptCutting        = "Cutting"
	DeptSewing         = "Sewing"
	DeptPackaging      = "Packaging"
	DeptWarehouse      = "Warehouse"
	DeptAccounting     = "Accounting"
	DeptHumanResources = "HumanResources"
)

// Employee representa un empleado de la empresa.
type Employee struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	Department      string
	Position        string
	Salary          decimal.Decimal
	HireDate        time.Time
	TerminationDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
