package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// orderStatuses estados válidos de un pedido.
var orderStatuses = map[string]bool{
	entity.OrderStatusPending:      true,
	entity.OrderStatusConfirmed:    true,
	entity.OrderStatusInProduction: true,
	entity.OrderStatusCompleted:    true,
	entity.OrderStatusDelivered:    true,
	entity.OrderStatusCancelled:    true,
}

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	tx           TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	tx TxRunner,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		tx:           tx,
	}
}

// Create crea un pedido con sus líneas. El total se calcula siempre a partir
// de las líneas; si una línea no trae precio se toma el precio de catálogo
// del producto.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]*entity.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	orderID := uuid.New().String()
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		unitPrice := line.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.UnitPrice
		}
		item := &entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		}
		items = append(items, item)
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	orderDate := time.Now()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	now := time.Now()
	order := &entity.Order{
		ID:           orderID,
		CustomerID:   in.CustomerID,
		OrderDate:    orderDate,
		TotalAmount:  total,
		Status:       entity.OrderStatusPending,
		Notes:        in.Notes,
		DeliveryDate: in.DeliveryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Cabecera y líneas en la misma transacción.
	err = uc.tx.RunOrder(context.Background(), func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.orderRepo.GetItemsByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// Update actualiza notas y fecha de entrega. Las líneas y el estado no se
// tocan por esta vía.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.DeliveryDate != nil {
		order.DeliveryDate = in.DeliveryDate
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order, nil), nil
}

// UpdateStatus cambia el estado del pedido.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !orderStatuses[status] {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order, nil), nil
}

// Delete elimina un pedido.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.orderRepo.Delete(id)
}

// List lista pedidos con paginación.
func (uc *OrderUseCase) List(page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{
		Items: toOrderItems(list),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByCustomer lista los pedidos de un cliente.
func (uc *OrderUseCase) ListByCustomer(customerID string) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toOrderItems(list), nil
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		OrderDate:    o.OrderDate,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		Notes:        o.Notes,
		DeliveryDate: o.DeliveryDate,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return resp
}

func toOrderItems(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return items
}
