package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/municipio-lab/muni-backend/internal/api/v1"
)

// ErrNotFound is returned when a reclamo with the requested id does not exist.
var ErrNotFound = errors.New("reclamo not found")

// ReclamoFilter narrows ListReclamos. Empty fields match everything.
type ReclamoFilter struct {
	Telefono string
	Estado   v1.Estado
	Limit    int
}

// ReclamoStore defines the interface for storing and retrieving reclamos.
type ReclamoStore interface {
	// CreateReclamo persists r and populates r.Numero from the database sequence.
	CreateReclamo(ctx context.Context, r *v1.Reclamo) error

	GetReclamo(ctx context.Context, id string) (*v1.Reclamo, error)

	// ListReclamos returns the most recent reclamos first.
	ListReclamos(ctx context.Context, filter ReclamoFilter) ([]*v1.Reclamo, error)

	// UpdateReclamoEstado sets the estado and returns the updated row.
	UpdateReclamoEstado(ctx context.Context, id string, estado v1.Estado, updatedAt time.Time) (*v1.Reclamo, error)
}
