package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
// UpdateStock dispara el chequeo de alertas después de persistir.
type ProductUseCase struct {
	repo    repository.ProductRepository
	alertUC *AlertUseCase
	log     *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, alertUC *AlertUseCase, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, alertUC: alertUC, log: log.Component("products")}
}

var productCategories = map[string]bool{
	entity.CategoryFabric:          true,
	entity.CategoryThread:          true,
	entity.CategoryButton:          true,
	entity.CategoryZipper:          true,
	entity.CategoryAccessory:       true,
	entity.CategoryFinishedProduct: true,
	entity.CategoryOther:           true,
}

// Create crea un producto nuevo. El código de catálogo debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !productCategories[in.Category] {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		UnitPrice:     in.UnitPrice,
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El stock no se toca aquí (ver UpdateStock).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		if !productCategories[*in.Category] {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateStock fija la cantidad en stock y dispara el chequeo de alertas.
// El chequeo es best-effort: si falla, el stock ya quedó persistido y solo
// se registra el error.
func (uc *ProductUseCase) UpdateStock(id string, quantity int) (*dto.ProductResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStock(id, quantity); err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	product.UpdatedAt = time.Now()

	if _, err := uc.alertUC.CheckProduct(id); err != nil {
		uc.log.Warn().Err(err).Str("product_id", id).Msg("chequeo de alertas tras actualizar stock fallido")
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
