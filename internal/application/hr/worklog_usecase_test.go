package hr

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo(employees ...*entity.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
	for _, e := range employees {
		cp := *e
		r.employees[e.ID] = &cp
	}
	return r
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return errors.New("empleado inexistente")
	}
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListByDepartment(department string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeWorkLogRepo struct {
	logs map[string]*entity.WorkLog
}

func newFakeWorkLogRepo() *fakeWorkLogRepo {
	return &fakeWorkLogRepo{logs: map[string]*entity.WorkLog{}}
}

func (r *fakeWorkLogRepo) Create(l *entity.WorkLog) error {
	cp := *l
	r.logs[l.ID] = &cp
	return nil
}

func (r *fakeWorkLogRepo) GetByID(id string) (*entity.WorkLog, error) {
	l, ok := r.logs[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeWorkLogRepo) Update(l *entity.WorkLog) error {
	if _, ok := r.logs[l.ID]; !ok {
		return errors.New("jornada inexistente")
	}
	cp := *l
	r.logs[l.ID] = &cp
	return nil
}

func (r *fakeWorkLogRepo) Delete(id string) error {
	delete(r.logs, id)
	return nil
}

func (r *fakeWorkLogRepo) ListByEmployee(employeeID string) ([]*entity.WorkLog, error) {
	var out []*entity.WorkLog
	for _, l := range r.logs {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeWorkLogRepo) GetOpenByEmployee(employeeID string) (*entity.WorkLog, error) {
	for _, l := range r.logs {
		if l.EmployeeID == employeeID && l.CheckOutTime == nil {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func seedEmployee(id string) *entity.Employee {
	return &entity.Employee{
		ID:         id,
		FirstName:  "Ana",
		LastName:   "Rojas",
		Department: entity.DeptSewing,
		HireDate:   time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Jornadas
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckIn_AbreJornada(t *testing.T) {
	uc := NewWorkLogUseCase(newFakeWorkLogRepo(), newFakeEmployeeRepo(seedEmployee("e1")))

	out, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "e1", Notes: "turno mañana"})
	require.NoError(t, err)
	assert.Equal(t, "e1", out.EmployeeID)
	assert.Nil(t, out.CheckOutTime)
	assert.Nil(t, out.WorkHours)
	assert.False(t, out.CheckInTime.IsZero())
}

func TestCheckIn_EmpleadoInexistente(t *testing.T) {
	uc := NewWorkLogUseCase(newFakeWorkLogRepo(), newFakeEmployeeRepo())

	_, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "fantasma"})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestCheckIn_JornadaAbiertaEsConflicto(t *testing.T) {
	uc := NewWorkLogUseCase(newFakeWorkLogRepo(), newFakeEmployeeRepo(seedEmployee("e1")))

	_, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	_, err = uc.CheckIn(dto.CheckInRequest{EmployeeID: "e1"})
	assert.Equal(t, domain.ErrConflict, err)
}

func TestCheckOut_CalculaHoras(t *testing.T) {
	logs := newFakeWorkLogRepo()
	uc := NewWorkLogUseCase(logs, newFakeEmployeeRepo(seedEmployee("e1")))

	opened, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	// Retrocede el check-in 8 horas para simular la jornada.
	stored := logs.logs[opened.ID]
	stored.CheckInTime = stored.CheckInTime.Add(-8 * time.Hour)

	out, err := uc.CheckOut(opened.ID)
	require.NoError(t, err)
	require.NotNil(t, out.CheckOutTime)
	require.NotNil(t, out.WorkHours)
	assert.Equal(t, "8", out.WorkHours.String(), "8 horas redondeadas a 2 decimales")

	// Cerrada la jornada, el empleado puede abrir otra.
	_, err = uc.CheckIn(dto.CheckInRequest{EmployeeID: "e1"})
	assert.NoError(t, err)
}

func TestCheckOut_DobleCierreEsConflicto(t *testing.T) {
	uc := NewWorkLogUseCase(newFakeWorkLogRepo(), newFakeEmployeeRepo(seedEmployee("e1")))

	opened, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "e1"})
	require.NoError(t, err)

	_, err = uc.CheckOut(opened.ID)
	require.NoError(t, err)

	_, err = uc.CheckOut(opened.ID)
	assert.Equal(t, domain.ErrConflict, err)
}

func TestCheckOut_JornadaInexistente(t *testing.T) {
	uc := NewWorkLogUseCase(newFakeWorkLogRepo(), newFakeEmployeeRepo())

	_, err := uc.CheckOut("no-existe")
	assert.Equal(t, domain.ErrNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeCreate_DepartamentoInvalido(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(dto.CreateEmployeeRequest{
		FirstName:  "Ana",
		LastName:   "Rojas",
		Department: "Marketing Galáctico",
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestEmployeeCreate_NombreRequerido(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	_, err := uc.Create(dto.CreateEmployeeRequest{Department: entity.DeptCutting})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestEmployeeCreate_HireDatePorDefecto(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	out, err := uc.Create(dto.CreateEmployeeRequest{
		FirstName:  "Ana",
		LastName:   "Rojas",
		Department: entity.DeptWarehouse,
		Position:   "Operaria",
	})
	require.NoError(t, err)
	assert.False(t, out.HireDate.IsZero())
}

func TestEmployeeUpdate_Inexistente(t *testing.T) {
	uc := NewEmployeeUseCase(newFakeEmployeeRepo())

	nombre := "Eva"
	_, err := uc.Update("fantasma", dto.UpdateEmployeeRequest{FirstName: &nombre})
	assert.Equal(t, domain.ErrNotFound, err)
}
