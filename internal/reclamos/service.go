package reclamos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/municipio-lab/muni-backend/internal/api/v1"
	"github.com/municipio-lab/muni-backend/internal/core/storage"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ErrInvalidReclamo marks request validation errors that should return HTTP 400.
var ErrInvalidReclamo = errors.New("invalid reclamo request")

// Service implements the reclamos use cases on top of a storage.ReclamoStore.
type Service struct {
	store            storage.ReclamoStore
	maxBodySizeBytes int
	nowFn            func() time.Time
}

func NewService(store storage.ReclamoStore, maxBodySizeMB int) *Service {
	if store == nil {
		panic("reclamos: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Service{
		store:            store,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            time.Now,
	}
}

// Create validates req and stores a new reclamo in estado pendiente.
func (s *Service) Create(ctx context.Context, req v1.CreateReclamoRequest) (*v1.Reclamo, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReclamo, err)
	}

	now := s.nowFn().UTC()
	r := &v1.Reclamo{
		ID:          uuid.NewString(),
		Telefono:    req.Telefono,
		Nombre:      req.Nombre,
		Categoria:   req.Categoria,
		Descripcion: req.Descripcion,
		Direccion:   req.Direccion,
		Estado:      v1.EstadoPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateReclamo(ctx, r); err != nil {
		return nil, err
	}

	slog.Info("[Reclamos] Reclamo created", "id", r.ID, "numero", r.Numero, "categoria", r.Categoria)
	return r, nil
}

// Get returns storage.ErrNotFound for unknown or malformed ids.
func (s *Service) Get(ctx context.Context, id string) (*v1.Reclamo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, storage.ErrNotFound
	}
	return s.store.GetReclamo(ctx, id)
}

// List clamps the limit to (0, 200] and rejects unknown estado filters.
func (s *Service) List(ctx context.Context, filter storage.ReclamoFilter) ([]*v1.Reclamo, error) {
	if filter.Estado != "" && !filter.Estado.Valid() {
		return nil, fmt.Errorf("%w: invalid estado %q", ErrInvalidReclamo, filter.Estado)
	}
	switch {
	case filter.Limit < 0:
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidReclamo)
	case filter.Limit == 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}
	return s.store.ListReclamos(ctx, filter)
}

// UpdateEstado moves a reclamo to the requested estado.
func (s *Service) UpdateEstado(ctx context.Context, id string, req v1.UpdateEstadoRequest) (*v1.Reclamo, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReclamo, err)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, storage.ErrNotFound
	}

	r, err := s.store.UpdateReclamoEstado(ctx, id, req.Estado, s.nowFn().UTC())
	if err != nil {
		return nil, err
	}

	slog.Info("[Reclamos] Estado updated", "id", r.ID, "numero", r.Numero, "estado", r.Estado)
	return r, nil
}
