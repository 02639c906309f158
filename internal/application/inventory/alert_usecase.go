package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// Umbrales de stock. Se evalúan en orden: agotado, bajo, punto de reorden.
const (
	thresholdOutOfStock   = 0
	thresholdLowStock     = 5
	thresholdReorderPoint = 10
)

// AlertUseCase deriva alertas de stock a partir del inventario y gestiona su
// ciclo de vida. Garantiza como máximo una alerta Active por producto
// (verificación lectura-luego-escritura, sin constraint; ver DESIGN.md).
type AlertUseCase struct {
	alertRepo   repository.StockAlertRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	notifier    AlertNotifier
	mailer      AlertMailer
	log         *logger.Logger
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(
	alertRepo repository.StockAlertRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notifier AlertNotifier,
	mailer AlertMailer,
	log *logger.Logger,
) *AlertUseCase {
	return &AlertUseCase{
		alertRepo:   alertRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		mailer:      mailer,
		log:         log.Component("alerts"),
	}
}

// classifyStock clasifica la cantidad en stock contra los umbrales.
// Devuelve ok=false cuando el nivel no amerita alerta (> 10).
func classifyStock(quantity int) (alertType string, threshold int, ok bool) {
	switch {
	case quantity == thresholdOutOfStock:
		return entity.AlertTypeOutOfStock, thresholdOutOfStock, true
	case quantity <= thresholdLowStock:
		return entity.AlertTypeLowStock, thresholdLowStock, true
	case quantity <= thresholdReorderPoint:
		return entity.AlertTypeReorderPoint, thresholdReorderPoint, true
	default:
		return "", 0, false
	}
}

// CheckProduct evalúa el stock de un producto y crea la alerta si cruzó un
// umbral y no hay ya una alerta Active para él. Ejecutarlo dos veces sobre un
// producto sin cambios crea exactamente una alerta.
//
// La escritura de la alerta es la operación autoritativa; la notificación
// in-app y el correo son best-effort: sus fallos se registran y se descartan.
func (uc *AlertUseCase) CheckProduct(productID string) (*dto.StockAlertResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	alertType, threshold, ok := classifyStock(product.StockQuantity)
	if !ok {
		return nil, nil
	}

	hasActive, err := uc.alertRepo.HasActiveByProduct(productID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, nil
	}

	alert := &entity.StockAlert{
		ID:                uuid.New().String(),
		ProductID:         productID,
		CurrentQuantity:   product.StockQuantity,
		ThresholdQuantity: threshold,
		AlertType:         alertType,
		Status:            entity.AlertStatusActive,
		CreatedAt:         time.Now(),
	}
	if err := uc.alertRepo.Create(alert); err != nil {
		return nil, err
	}

	uc.sendAlertNotifications(product, alertType)

	return toAlertResponse(alert), nil
}

// CheckAll aplica CheckProduct a todo el catálogo, secuencialmente.
// Devuelve las alertas creadas en el barrido.
func (uc *AlertUseCase) CheckAll() ([]dto.StockAlertResponse, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	created := make([]dto.StockAlertResponse, 0)
	for _, p := range products {
		alert, err := uc.CheckProduct(p.ID)
		if err != nil {
			return nil, err
		}
		if alert != nil {
			created = append(created, *alert)
		}
	}
	return created, nil
}

// sendAlertNotifications dispara los canales laterales de una alerta nueva:
// notificación in-app a los administradores y correo de aviso. Cualquier
// fallo aquí se registra y se traga; el chequeo de stock siempre concluye.
func (uc *AlertUseCase) sendAlertNotifications(product *entity.Product, alertType string) {
	var message string
	switch alertType {
	case entity.AlertTypeOutOfStock:
		message = fmt.Sprintf("El producto %s está agotado", product.Name)
	case entity.AlertTypeLowStock:
		message = fmt.Sprintf("Stock bajo para %s: quedan %d unidades", product.Name, product.StockQuantity)
	case entity.AlertTypeReorderPoint:
		message = fmt.Sprintf("%s alcanzó el punto de reorden: %d unidades", product.Name, product.StockQuantity)
	default:
		message = fmt.Sprintf("Alerta de stock para %s", product.Name)
	}

	priority := entity.PriorityHigh
	if alertType == entity.AlertTypeOutOfStock {
		priority = entity.PriorityUrgent
	}

	admins, err := uc.userRepo.ListByRole(entity.RoleAdmin)
	if err != nil {
		uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("no se pudieron listar administradores")
	} else if len(admins) > 0 {
		ids := make([]string, 0, len(admins))
		for _, a := range admins {
			ids = append(ids, a.ID)
		}
		if err := uc.notifier.CreateForUsers(ids, "Alerta de stock", message,
			entity.NotificationTypeStock, priority, "Product", product.ID); err != nil {
			uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("notificación de alerta fallida")
		}
	}

	if err := uc.mailer.SendLowStockAlert(product, alertType); err != nil {
		uc.log.Warn().Err(err).Str("product_id", product.ID).Msg("correo de alerta fallido")
	}
}

// Resolve transiciona una alerta Active → Resolved estampando quién y cuándo.
// Sobre una alerta ya Resolved o Ignored es un no-op (se devuelve tal cual).
func (uc *AlertUseCase) Resolve(id string, in dto.ResolveAlertRequest) (*dto.StockAlertResponse, error) {
	alert, err := uc.alertRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if alert.Status == entity.AlertStatusActive {
		now := time.Now()
		alert.Status = entity.AlertStatusResolved
		alert.ResolvedDate = &now
		alert.ResolvedBy = in.ResolvedBy
		alert.Notes = in.Notes
		if err := uc.alertRepo.Update(alert); err != nil {
			return nil, err
		}
	}
	return toAlertResponse(alert), nil
}

// Create registra una alerta manual (ej. OverStock detectado en recuento físico).
func (uc *AlertUseCase) Create(in dto.CreateStockAlertRequest) (*dto.StockAlertResponse, error) {
	switch in.AlertType {
	case entity.AlertTypeLowStock, entity.AlertTypeOutOfStock,
		entity.AlertTypeReorderPoint, entity.AlertTypeOverStock:
	default:
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	alert := &entity.StockAlert{
		ID:                uuid.New().String(),
		ProductID:         in.ProductID,
		CurrentQuantity:   in.CurrentQuantity,
		ThresholdQuantity: in.ThresholdQuantity,
		AlertType:         in.AlertType,
		Status:            entity.AlertStatusActive,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
	}
	if err := uc.alertRepo.Create(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// UpdateStatus actualización directa de estado (ej. marcar Ignored).
func (uc *AlertUseCase) UpdateStatus(id, status string) (*dto.StockAlertResponse, error) {
	switch status {
	case entity.AlertStatusActive, entity.AlertStatusResolved, entity.AlertStatusIgnored:
	default:
		return nil, domain.ErrInvalidInput
	}
	alert, err := uc.alertRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	alert.Status = status
	if err := uc.alertRepo.Update(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// GetByID obtiene una alerta por ID.
func (uc *AlertUseCase) GetByID(id string) (*dto.StockAlertResponse, error) {
	alert, err := uc.alertRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, nil
	}
	return toAlertResponse(alert), nil
}

// List lista alertas con paginación.
func (uc *AlertUseCase) List(limit, offset int) (*dto.StockAlertListResponse, error) {
	list, err := uc.alertRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.StockAlertListResponse{
		Items: toAlertItems(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListActive lista las alertas activas (más recientes primero, según el repo).
func (uc *AlertUseCase) ListActive() ([]dto.StockAlertResponse, error) {
	list, err := uc.alertRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return toAlertItems(list), nil
}

// ListByProduct lista las alertas de un producto.
func (uc *AlertUseCase) ListByProduct(productID string) ([]dto.StockAlertResponse, error) {
	list, err := uc.alertRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toAlertItems(list), nil
}

// Delete elimina una alerta.
func (uc *AlertUseCase) Delete(id string) error {
	return uc.alertRepo.Delete(id)
}

func toAlertResponse(a *entity.StockAlert) *dto.StockAlertResponse {
	if a == nil {
		return nil
	}
	return &dto.StockAlertResponse{
		ID:                a.ID,
		ProductID:         a.ProductID,
		CurrentQuantity:   a.CurrentQuantity,
		ThresholdQuantity: a.ThresholdQuantity,
		AlertType:         a.AlertType,
		Status:            a.Status,
		ResolvedDate:      a.ResolvedDate,
		ResolvedBy:        a.ResolvedBy,
		Notes:             a.Notes,
		CreatedAt:         a.CreatedAt,
	}
}

func toAlertItems(list []*entity.StockAlert) []dto.StockAlertResponse {
	items := make([]dto.StockAlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlertResponse(a))
	}
	return items
}
