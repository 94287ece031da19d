package v1

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Estado is the lifecycle state of a reclamo.
type Estado string

const (
	EstadoPendiente Estado = "pendiente"
	EstadoEnProceso Estado = "en_proceso"
	EstadoResuelto  Estado = "resuelto"
	EstadoCerrado   Estado = "cerrado"
)

// Valid reports whether e is a known state.
func (e Estado) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoEnProceso, EstadoResuelto, EstadoCerrado:
		return true
	}
	return false
}

const (
	maxReclamoDescripcionLen = 2000
	maxReclamoFieldLen       = 200
)

// Reclamo is a citizen complaint.
type Reclamo struct {
	ID string `json:"id"`

	// Numero is the sequential, human-facing complaint number. Set by the database.
	Numero int64 `json:"numero"`

	Telefono    string    `json:"telefono"`
	Nombre      string    `json:"nombre,omitempty"`
	Categoria   string    `json:"categoria"`
	Descripcion string    `json:"descripcion"`
	Direccion   string    `json:"direccion,omitempty"`
	Estado      Estado    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateReclamoRequest is the body of POST /v1/reclamos.
type CreateReclamoRequest struct {
	Telefono    string `json:"telefono"`
	Nombre      string `json:"nombre"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion"`
	Direccion   string `json:"direccion"`
}

// Normalize trims every field in place.
func (r *CreateReclamoRequest) Normalize() {
	r.Telefono = strings.TrimSpace(r.Telefono)
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Categoria = strings.ToLower(strings.TrimSpace(r.Categoria))
	r.Descripcion = strings.TrimSpace(r.Descripcion)
	r.Direccion = strings.TrimSpace(r.Direccion)
}

func (r *CreateReclamoRequest) Validate() error {
	if r.Telefono == "" {
		return fmt.Errorf("telefono is required")
	}
	if r.Categoria == "" {
		return fmt.Errorf("categoria is required")
	}
	if r.Descripcion == "" {
		return fmt.Errorf("descripcion is required")
	}
	if utf8.RuneCountInString(r.Descripcion) > maxReclamoDescripcionLen {
		return fmt.Errorf("descripcion exceeds %d characters", maxReclamoDescripcionLen)
	}
	fields := []struct{ name, value string }{
		{"telefono", r.Telefono},
		{"nombre", r.Nombre},
		{"categoria", r.Categoria},
		{"direccion", r.Direccion},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > maxReclamoFieldLen {
			return fmt.Errorf("%s exceeds %d characters", f.name, maxReclamoFieldLen)
		}
	}
	return nil
}

// UpdateEstadoRequest is the body of PATCH /v1/reclamos/:id/estado.
type UpdateEstadoRequest struct {
	Estado Estado `json:"estado"`
}

func (r *UpdateEstadoRequest) Validate() error {
	if !r.Estado.Valid() {
		return fmt.Errorf("invalid estado %q", r.Estado)
	}
	return nil
}
