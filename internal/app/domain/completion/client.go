package completion

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/observability/metrics"
)

const (
	// ServiceUnavailableMessage is what Generate returns when no provider credential is configured.
	ServiceUnavailableMessage = "AI Service Unavailable: Please configure the completion provider API key in backend/.env"
	// EmptyJSON is what GenerateJSON returns when no provider credential is configured.
	EmptyJSON = "{}"
	// JSONSystemInstruction is the system turn added to every JSON-mode call.
	JSONSystemInstruction = "You are a helpful assistant that outputs only valid JSON."

	errorPrefix     = "AI Error: "
	jsonRetrySuffix = "\n\nReturn only valid JSON."
)

// Request is one chat completion round trip.
type Request struct {
	System   string
	Prompt   string
	JSONMode bool
}

// Provider performs a single call against a hosted completion API.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, req Request) (string, error)
}

// Client never fails: provider problems come back as text, so handlers
// always have something to validate or return.
type Client struct {
	provider Provider
	logger   *zap.Logger
}

// NewClient wraps provider. A nil provider puts the client in the
// "AI unavailable" state.
func NewClient(provider Provider, logger *zap.Logger) *Client {
	return &Client{provider: provider, logger: logger}
}

// Available reports whether a provider is configured.
func (c *Client) Available() bool {
	return c.provider != nil
}

// Generate sends prompt as a single user turn and returns the raw text, or a
// descriptive error string.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	if c.provider == nil {
		return ServiceUnavailableMessage
	}

	text, err := c.complete(ctx, "text", Request{Prompt: prompt})
	if err != nil {
		c.logger.Error("Completion failed", zap.String("provider", c.provider.Name()), zap.Error(err))
		return errorPrefix + err.Error()
	}
	return text
}

// GenerateJSON asks the provider for a JSON object. If JSON mode fails the
// prompt is resent as a plain completion; the result is not validated here.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) string {
	if c.provider == nil {
		return EmptyJSON
	}

	text, err := c.complete(ctx, "json", Request{
		System:   JSONSystemInstruction,
		Prompt:   prompt,
		JSONMode: true,
	})
	if err != nil {
		c.logger.Warn("JSON mode completion failed, falling back to plain completion",
			zap.String("provider", c.provider.Name()),
			zap.Error(err))
		return c.Generate(ctx, prompt+jsonRetrySuffix)
	}
	return text
}

func (c *Client) complete(ctx context.Context, mode string, req Request) (string, error) {
	ctx, span := otel.Tracer("completion").Start(ctx, "Complete", trace.WithAttributes(
		attribute.String("provider", c.provider.Name()),
		attribute.String("model", c.provider.Model()),
		attribute.String("mode", mode),
		attribute.Int("prompt.length", len(req.Prompt)),
	))
	defer span.End()

	start := time.Now()
	text, err := c.provider.Complete(ctx, req)
	latency := time.Since(start)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
	} else {
		span.SetAttributes(attribute.Int("response.length", len(text)))
		span.SetStatus(codes.Ok, "completion succeeded")
	}

	attrs := metric.WithAttributes(
		attribute.String("provider", c.provider.Name()),
		attribute.String("mode", mode),
		attribute.String("outcome", outcome),
	)
	m := metrics.Get()
	m.CompletionRequestsTotal.Add(ctx, 1, attrs)
	m.CompletionDuration.Record(ctx, latency.Seconds(), attrs)

	c.logger.Debug("Completion call finished",
		zap.String("provider", c.provider.Name()),
		zap.String("mode", mode),
		zap.Duration("latency", latency),
		zap.String("outcome", outcome))

	return text, err
}
