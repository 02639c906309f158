package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.WorkLogRepository = (*WorkLogRepo)(nil)

// WorkLogRepo implementación de WorkLogRepository (usable con pool o tx).
type WorkLogRepo struct {
	q Querier
}

// NewWorkLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkLogRepository(q Querier) *WorkLogRepo {
	return &WorkLogRepo{q: q}
}

const workLogColumns = `id, employee_id, check_in_time, check_out_time, work_hours, notes, created_at`

// Create persiste una nueva jornada.
func (r *WorkLogRepo) Create(log *entity.WorkLog) error {
	query := `
		INSERT INTO work_logs (` + workLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.EmployeeID, log.CheckInTime, log.CheckOutTime, log.WorkHours,
		log.Notes, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work log: %w", err)
	}
	return nil
}

// GetByID obtiene una jornada por ID.
func (r *WorkLogRepo) GetByID(id string) (*entity.WorkLog, error) {
	query := `SELECT ` + workLogColumns + ` FROM work_logs WHERE id = $1`
	return r.getOne(query, id)
}

// GetOpenByEmployee devuelve la jornada sin check-out del empleado, si existe.
func (r *WorkLogRepo) GetOpenByEmployee(employeeID string) (*entity.WorkLog, error) {
	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs WHERE employee_id = $1 AND check_out_time IS NULL
		ORDER BY check_in_time DESC LIMIT 1`
	return r.getOne(query, employeeID)
}

func (r *WorkLogRepo) getOne(query string, arg any) (*entity.WorkLog, error) {
	var log entity.WorkLog
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&log.ID, &log.EmployeeID, &log.CheckInTime, &log.CheckOutTime, &log.WorkHours,
		&log.Notes, &log.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work log: %w", err)
	}
	return &log, nil
}

// Update actualiza una jornada (check-out y horas).
func (r *WorkLogRepo) Update(log *entity.WorkLog) error {
	query := `
		UPDATE work_logs
		SET check_out_time = $2, work_hours = $3, notes = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.CheckOutTime, log.WorkHours, log.Notes,
	)
	if err != nil {
		return fmt.Errorf("update work log: %w", err)
	}
	return nil
}

// Delete elimina una jornada por ID.
func (r *WorkLogRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work log: %w", err)
	}
	return nil
}

// ListByEmployee lista las jornadas de un empleado (recientes primero).
func (r *WorkLogRepo) ListByEmployee(employeeID string) ([]*entity.WorkLog, error) {
	query := `SELECT ` + workLogColumns + ` FROM work_logs WHERE employee_id = $1 ORDER BY check_in_time DESC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkLog
	for rows.Next() {
		var log entity.WorkLog
		if err := rows.Scan(&log.ID, &log.EmployeeID, &log.CheckInTime, &log.CheckOutTime,
			&log.WorkHours, &log.Notes, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan work log: %w", err)
		}
		list = append(list, &log)
	}
	return list, rows.Err()
}
