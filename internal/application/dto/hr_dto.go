package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Empleados ─────────────────────────────────────────────────────────────────

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	FirstName  string          `json:"first_name" validate:"required"`
	LastName   string          `json:"last_name" validate:"required"`
	Email      string          `json:"email" validate:"omitempty,email"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Department string          `json:"department" validate:"required"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   *time.Time      `json:"hire_date"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	Phone           *string          `json:"phone"`
	Address         *string          `json:"address"`
	Department      *string          `json:"department"`
	Position        *string          `json:"position"`
	Salary          *decimal.Decimal `json:"salary"`
	TerminationDate *time.Time       `json:"termination_date"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	Department      string          `json:"department"`
	Position        string          `json:"position"`
	Salary          decimal.Decimal `json:"salary"`
	HireDate        time.Time       `json:"hire_date"`
	TerminationDate *time.Time      `json:"termination_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Jornadas ──────────────────────────────────────────────────────────────────

// CheckInRequest entrada para abrir una jornada.
type CheckInRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Notes      string `json:"notes"`
}

// WorkLogResponse salida de una jornada.
type WorkLogResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	CheckInTime  time.Time        `json:"check_in_time"`
	CheckOutTime *time.Time       `json:"check_out_time,omitempty"`
	WorkHours    *decimal.Decimal `json:"work_hours,omitempty"`
	Notes        string           `json:"notes"`
	CreatedAt    time.Time        `json:"created_at"`
}
