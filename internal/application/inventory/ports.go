package inventory

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// AlertNotifier crea notificaciones in-app para un conjunto de usuarios.
// Canal no autoritativo: sus errores nunca deben revertir la escritura de la alerta.
type AlertNotifier interface {
	CreateForUsers(userIDs []string, title, message, ntype, priority, entityType, entityID string) error
}

// AlertMailer envía el correo de aviso de stock. Fire-and-forget respecto al
// chequeo de umbrales.
type AlertMailer interface {
	SendLowStockAlert(product *entity.Product, alertType string) error
}
