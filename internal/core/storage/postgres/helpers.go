package postgres

import v1 "github.com/municipio-lab/muni-backend/internal/api/v1"

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReclamoRow scans a database row into a Reclamo.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanReclamoRow(row scanner) (*v1.Reclamo, error) {
	var r v1.Reclamo
	var estado string

	err := row.Scan(
		&r.ID,
		&r.Numero,
		&r.Telefono,
		&r.Nombre,
		&r.Categoria,
		&r.Descripcion,
		&r.Direccion,
		&estado,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Estado = v1.Estado(estado)

	return &r, nil
}
