package dto

import "time"

// CreateNotificationRequest entrada para crear una notificación.
type CreateNotificationRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Message    string `json:"message" validate:"required"`
	Type       string `json:"type"`
	Priority   string `json:"priority"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Type       string     `json:"type"`
	Priority   string     `json:"priority"`
	IsRead     bool       `json:"is_read"`
	ReadDate   *time.Time `json:"read_date,omitempty"`
	EntityType string     `json:"entity_type,omitempty"`
	EntityID   string     `json:"entity_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UnreadCountResponse conteo de notificaciones sin leer.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
