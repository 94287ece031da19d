package reclamos

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/municipio-lab/muni-backend/internal/api/v1"
	httperr "github.com/municipio-lab/muni-backend/internal/core/errors"
	"github.com/municipio-lab/muni-backend/internal/core/storage"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all reclamo routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/reclamos", s.HandleCreate)
	r.GET("/v1/reclamos", s.HandleList)
	r.GET("/v1/reclamos/:id", s.HandleGet)
	r.PATCH("/v1/reclamos/:id/estado", s.HandleUpdateEstado)
}

// HandleCreate handles POST /v1/reclamos
func (s *Service) HandleCreate(c *gin.Context) {
	var req v1.CreateReclamoRequest
	if !s.bindBody(c, &req) {
		return
	}

	r, err := s.Create(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err, "Failed to create reclamo")
		return
	}

	c.JSON(http.StatusCreated, r)
}

// HandleGet handles GET /v1/reclamos/:id
func (s *Service) HandleGet(c *gin.Context) {
	r, err := s.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err, "Failed to get reclamo")
		return
	}

	c.JSON(http.StatusOK, r)
}

// HandleList handles GET /v1/reclamos
// Query parameters: telefono, estado, limit
func (s *Service) HandleList(c *gin.Context) {
	var query struct {
		Telefono string `form:"telefono"`
		Estado   string `form:"estado"`
		Limit    int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	reclamos, err := s.List(c.Request.Context(), storage.ReclamoFilter{
		Telefono: query.Telefono,
		Estado:   v1.Estado(query.Estado),
		Limit:    query.Limit,
	})
	if err != nil {
		s.writeError(c, err, "Failed to list reclamos")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reclamos": reclamos,
		"count":    len(reclamos),
	})
}

// HandleUpdateEstado handles PATCH /v1/reclamos/:id/estado
func (s *Service) HandleUpdateEstado(c *gin.Context) {
	var req v1.UpdateEstadoRequest
	if !s.bindBody(c, &req) {
		return
	}

	r, err := s.UpdateEstado(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.writeError(c, err, "Failed to update reclamo estado")
		return
	}

	c.JSON(http.StatusOK, r)
}

// bindBody reads at most maxBodySizeBytes and decodes the body into dst.
// It writes the error response itself and reports whether decoding succeeded.
func (s *Service) bindBody(c *gin.Context, dst any) bool {
	maxBytes := int64(s.maxBodySizeBytes)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1)) // +1 to detect oversized requests
	if err != nil {
		slog.Error("[Reclamos] Failed to read request body", "error", err)
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Failed to read request body",
		})
		return false
	}
	if int64(len(body)) > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Request body exceeds maximum allowed size",
			Details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		})
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
			Details:   err.Error(),
		})
		return false
	}
	return true
}

// writeError maps service errors to HTTP responses. Anything unexpected is a
// 500 recorded on the gin context so the 5xx observer can report it.
func (s *Service) writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidReclamo):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   err.Error(),
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "Reclamo not found",
		})
	default:
		slog.Error("[Reclamos] Store operation failed", "error", err, "path", c.FullPath())
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
		})
	}
}
