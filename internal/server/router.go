package server

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/travelmind/internal/app/middleware"
	"github.com/FACorreiaa/travelmind/internal/pkg/config"
	"github.com/FACorreiaa/travelmind/internal/routes"
)

// SetupRouter configures the Gin router with all middleware and routes and
// wraps it in the CORS handler.
func SetupRouter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	r.Use(middleware.SecurityMiddleware())

	if err := routes.Setup(ctx, r, cfg, logger); err != nil {
		return nil, err
	}

	return middleware.CORS(r, cfg.CORS.AllowedOrigins, cfg.CORS.AllowAll), nil
}

// zapContextFunc adds the request and trace ids to every access log line.
// Bodies are not logged since they carry credentials.
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := middleware.GetRequestID(c); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		return fields
	}
}
