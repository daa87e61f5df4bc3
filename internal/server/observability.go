package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/observability/metrics"
	"github.com/FACorreiaa/travelmind/internal/app/observability/tracer"
	"github.com/FACorreiaa/travelmind/internal/pkg/config"
)

// ObservabilityShutdownFunc is the function type returned by InitObservability
type ObservabilityShutdownFunc func(context.Context) error

// InitObservability initializes OpenTelemetry and application metrics
func InitObservability(cfg *config.Config, version string, logger *zap.Logger) (ObservabilityShutdownFunc, error) {
	otelShutdown, err := tracer.InitOtelProviders(tracer.Options{
		ServiceName:  cfg.Observability.ServiceName,
		Version:      version,
		MetricsAddr:  cfg.Server.MetricsAddr,
		OTLPEndpoint: cfg.Observability.OTLPEndpoint,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics.InitAppMetrics()
	logger.Info("Observability initialized", zap.String("metrics_endpoint", cfg.Server.MetricsAddr+"/metrics"))

	return otelShutdown, nil
}
