package entity

import "time"

// Tipos de notificación in-app.
const (
	NotificationTypeInfo    = "Info"
	NotificationTypeSuccess = "Success"
	NotificationTypeWarning = "Warning"
	NotificationTypeError   = "Error"
	NotificationTypeOrder   = "Order"
	NotificationTypePayment = "Payment"
	NotificationTypeStock   = "Stock"
	NotificationTypeSystem  = "System"
)

// Prioridades de notificación.
const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Notification representa una notificación in-app dirigida a un usuario.
// EntityType/EntityID enlazan opcionalmente con el registro que la originó.
type Notification struct {
	ID         string
	UserID     string
	Title      string
	Message    string
	Type       string
	Priority   string
	IsRead     bool
	ReadDate   *time.Time
	EntityType string
	EntityID   string
	CreatedAt  time.Time
}
