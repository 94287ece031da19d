package postgres

// SQL queries for reclamo storage operations

const (
	// queryCreateReclamo inserts a reclamo.
	// RETURNING retrieves the BIGSERIAL numero shown to citizens.
	queryCreateReclamo = `
		INSERT INTO reclamos (
			id, telefono, nombre, categoria, descripcion,
			direccion, estado, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING numero
	`

	queryGetReclamo = `
		SELECT
			id, numero, telefono, nombre, categoria, descripcion,
			direccion, estado, created_at, updated_at
		FROM reclamos
		WHERE id = $1
	`

	// queryListReclamos treats an empty telefono/estado parameter as "any".
	queryListReclamos = `
		SELECT
			id, numero, telefono, nombre, categoria, descripcion,
			direccion, estado, created_at, updated_at
		FROM reclamos
		WHERE ($1 = '' OR telefono = $1)
		  AND ($2 = '' OR estado = $2)
		ORDER BY created_at DESC, numero DESC
		LIMIT $3
	`

	// queryUpdateReclamoEstado returns no rows (sql.ErrNoRows) for unknown ids.
	queryUpdateReclamoEstado = `
		UPDATE reclamos
		SET estado = $2, updated_at = $3
		WHERE id = $1
		RETURNING
			id, numero, telefono, nombre, categoria, descripcion,
			direccion, estado, created_at, updated_at
	`
)
