package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, first_name, last_name, email, phone, address, department,
	position, salary, hire_date, termination_date, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Address, e.Department,
		e.Position, e.Salary, e.HireDate, e.TerminationDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Address, &e.Department,
		&e.Position, &e.Salary, &e.HireDate, &e.TerminationDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6,
			department = $7, position = $8, salary = $9, termination_date = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Address, e.Department,
		e.Position, e.Salary, e.TerminationDate, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

// ListByDepartment lista los empleados de un departamento.
func (r *EmployeeRepo) ListByDepartment(department string) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department = $1 ORDER BY last_name, first_name`
	rows, err := r.q.Query(context.Background(), query, department)
	if err != nil {
		return nil, fmt.Errorf("list employees by department: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Address,
			&e.Department, &e.Position, &e.Salary, &e.HireDate, &e.TerminationDate,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
