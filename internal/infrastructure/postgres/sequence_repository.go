package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementación de SequenceRepository sobre la tabla
// document_sequences (prefix PK, last_number).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo del prefijo en una sola sentencia.
// El upsert con RETURNING hace el incremento atómico: dos llamadas
// concurrentes con el mismo prefijo nunca ven el mismo valor.
func (r *SequenceRepo) Next(prefix string) (int, error) {
	query := `
		INSERT INTO document_sequences (prefix, last_number)
		VALUES ($1, 1)
		ON CONFLICT (prefix) DO UPDATE SET last_number = document_sequences.last_number + 1
		RETURNING last_number`
	var n int
	if err := r.q.QueryRow(context.Background(), query, prefix).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", prefix, err)
	}
	return n, nil
}
