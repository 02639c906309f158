package repository

// SequenceRepository entrega consecutivos para numeración de documentos
// (facturas, referencias de pago) por prefijo de período.
//
// Next es atómico: dos llamadas concurrentes con el mismo prefijo nunca
// devuelven el mismo valor. Un prefijo nuevo (mes o año nuevo) arranca en 1.
type SequenceRepository interface {
	Next(prefix string) (int, error)
}
