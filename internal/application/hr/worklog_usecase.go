package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// WorkLogUseCase casos de uso de jornadas (check-in / check-out).
type WorkLogUseCase struct {
	workLogRepo  repository.WorkLogRepository
	employeeRepo repository.EmployeeRepository
}

// NewWorkLogUseCase construye el caso de uso.
func NewWorkLogUseCase(
	workLogRepo repository.WorkLogRepository,
	employeeRepo repository.EmployeeRepository,
) *WorkLogUseCase {
	return &WorkLogUseCase{workLogRepo: workLogRepo, employeeRepo: employeeRepo}
}

// CheckIn abre una jornada para el empleado. Rechaza con ErrConflict si ya
// tiene una jornada abierta.
func (uc *WorkLogUseCase) CheckIn(in dto.CheckInRequest) (*dto.WorkLogResponse, error) {
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	open, err := uc.workLogRepo.GetOpenByEmployee(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	log := &entity.WorkLog{
		ID:          uuid.New().String(),
		EmployeeID:  in.EmployeeID,
		CheckInTime: now,
		Notes:       in.Notes,
		CreatedAt:   now,
	}
	if err := uc.workLogRepo.Create(log); err != nil {
		return nil, err
	}
	return toWorkLogResponse(log), nil
}

// CheckOut cierra la jornada y calcula las horas trabajadas en horas
// decimales. Un doble check-out devuelve ErrConflict.
func (uc *WorkLogUseCase) CheckOut(id string) (*dto.WorkLogResponse, error) {
	log, err := uc.workLogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, domain.ErrNotFound
	}
	if log.CheckOutTime != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	hours := decimal.NewFromFloat(now.Sub(log.CheckInTime).Hours()).Round(2)
	log.CheckOutTime = &now
	log.WorkHours = &hours
	if err := uc.workLogRepo.Update(log); err != nil {
		return nil, err
	}
	return toWorkLogResponse(log), nil
}

// GetByID obtiene una jornada por ID.
func (uc *WorkLogUseCase) GetByID(id string) (*dto.WorkLogResponse, error) {
	log, err := uc.workLogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	return toWorkLogResponse(log), nil
}

// ListByEmployee lista las jornadas de un empleado.
func (uc *WorkLogUseCase) ListByEmployee(employeeID string) ([]dto.WorkLogResponse, error) {
	list, err := uc.workLogRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkLogResponse, 0, len(list))
	for _, log := range list {
		items = append(items, *toWorkLogResponse(log))
	}
	return items, nil
}

// Delete elimina una jornada.
func (uc *WorkLogUseCase) Delete(id string) error {
	return uc.workLogRepo.Delete(id)
}

func toWorkLogResponse(log *entity.WorkLog) *dto.WorkLogResponse {
	if log == nil {
		return nil
	}
	return &dto.WorkLogResponse{
		ID:           log.ID,
		EmployeeID:   log.EmployeeID,
		CheckInTime:  log.CheckInTime,
		CheckOutTime: log.CheckOutTime,
		WorkHours:    log.WorkHours,
		Notes:        log.Notes,
		CreatedAt:    log.CreatedAt,
	}
}
