package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// departments departamentos válidos.
var departments = map[string]bool{
	entity.DeptManagement:     true,
	entity.DeptSales:          true,
	entity.DeptProduction:     true,
	entity.DeptCutting:        true,
	entity.DeptSewing:         true,
	entity.DeptPackaging:      true,
	entity.DeptWarehouse:      true,
	entity.DeptAccounting:     true,
	entity.DeptHumanResources: true,
}

// EmployeeUseCase casos de uso de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !departments[in.Department] {
		return nil, domain.ErrInvalidInput
	}
	hireDate := time.Now()
	if in.HireDate != nil {
		hireDate = *in.HireDate
	}
	now := time.Now()
	e := &entity.Employee{
		ID:         uuid.New().String(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Department: in.Department,
		Position:   in.Position,
		Salary:     in.Salary,
		HireDate:   hireDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEmployeeResponse(e), nil
}

// Update actualiza los campos presentes de un empleado.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		e.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		e.LastName = *in.LastName
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}
	if in.Address != nil {
		e.Address = *in.Address
	}
	if in.Department != nil {
		if !departments[*in.Department] {
			return nil, domain.ErrInvalidInput
		}
		e.Department = *in.Department
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.Salary != nil {
		e.Salary = *in.Salary
	}
	if in.TerminationDate != nil {
		e.TerminationDate = in.TerminationDate
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByDepartment lista los empleados de un departamento.
func (uc *EmployeeUseCase) ListByDepartment(department string) ([]dto.EmployeeResponse, error) {
	if !departments[department] {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByDepartment(department)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:              e.ID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Phone:           e.Phone,
		Address:         e.Address,
		Department:      e.Department,
		Position:        e.Position,
		Salary:          e.Salary,
		HireDate:        e.HireDate,
		TerminationDate: e.TerminationDate,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
