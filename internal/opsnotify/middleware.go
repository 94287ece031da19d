package opsnotify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalEmitter is the part of Pipeline used by backend components.
type InternalEmitter interface {
	EmitInternalEvent(ctx context.Context, raw RawEvent, nctx *NotificationContext) NormalizedEvent
}

// ObserveServerErrors reports every response with status >= 500 as an
// internal "http_5xx" event. A panicking handler is reported as a 500 and
// the panic is re-raised for the outer gin.Recovery to answer.
func ObserveServerErrors(emitter InternalEmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				emitServerError(emitter, c, http.StatusInternalServerError, map[string]any{
					"panic": ScrubText(fmt.Sprint(rec)),
				})
				panic(rec)
			}
		}()

		c.Next()

		status := c.Writer.Status()
		if status < http.StatusInternalServerError {
			return
		}

		extra := map[string]any{}
		if last := c.Errors.Last(); last != nil {
			// Store errors may quote row values.
			extra["error"] = ScrubText(last.Error())
		}
		emitServerError(emitter, c, status, extra)
	}
}

func emitServerError(emitter InternalEmitter, c *gin.Context, status int, extra map[string]any) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	metadata := map[string]any{
		"method": c.Request.Method,
		"route":  route,
		"status": status,
	}
	for k, v := range extra {
		metadata[k] = v
	}

	emitter.EmitInternalEvent(c.Request.Context(), RawEvent{
		Type:     "http_5xx",
		Severity: string(SeverityError),
		Title:    fmt.Sprintf("HTTP %d %s %s", status, c.Request.Method, route),
		Message:  http.StatusText(status),
		// One fingerprint per failing route, whatever the error text.
		Fingerprint: fmt.Sprintf("http_5xx:%d:%s:%s", status, c.Request.Method, route),
		Metadata:    metadata,
	}, notificationContextFrom(c))
}
