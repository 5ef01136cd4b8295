package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/google/uuid"
)

// TracingConfig holds configuration for the tracing middleware
type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// Tracing returns OpenTelemetry tracing middleware. Spans are enriched with
// request_id, store_id and user_id when the auth middleware has set them.
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	base := otelgin.Middleware(cfg.ServiceName)

	return func(c *gin.Context) {
		base(c)

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		if id, ok := c.Get("request_id"); ok {
			if s, ok := id.(string); ok && s != "" {
				span.SetAttributes(attribute.String("request_id", s))
			}
		}
		if v, ok := c.Get(StoreIDKey); ok {
			if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
				span.SetAttributes(attribute.String("store_id", id.String()))
			}
		}
		if v, ok := c.Get(UserIDKey); ok {
			if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
				span.SetAttributes(attribute.String("user_id", id.String()))
			}
		}
	}
}
