package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkLog registra una jornada de un empleado. WorkHours se calcula al hacer
// check-out (CheckOutTime - CheckInTime, en horas decimales).
type WorkLog struct {
	ID           string
	EmployeeID   string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	WorkHours    *decimal.Decimal
	Notes        string
	CreatedAt    time.Time
}
