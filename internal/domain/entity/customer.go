package entity

import "time"

// Customer representa un cliente de la empresa textil (confección y venta al por mayor).
type Customer struct {
	ID          string
	Name        string
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
