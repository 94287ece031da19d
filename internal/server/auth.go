package server

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	httperr "github.com/municipio-lab/muni-backend/internal/core/errors"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-Key"

// RequireAPIKey rejects requests that do not present the static key
// configured for scope. A scope without a configured key rejects everything.
func RequireAPIKey(scope string, keys map[string]string) gin.HandlerFunc {
	expected := strings.TrimSpace(keys[scope])
	if expected == "" {
		slog.Warn("[Auth] No API key configured, endpoints will reject all requests", "scope", scope)
	}

	return func(c *gin.Context) {
		if expected == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
				ErrorType: httperr.HttpAuthNotConfiguredError,
				Message:   "API key not configured for this endpoint",
			})
			return
		}

		presented := presentedKey(c)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnauthorizedError,
				Message:   "Invalid or missing API key",
			})
			return
		}
		c.Next()
	}
}

func presentedKey(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	auth := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
