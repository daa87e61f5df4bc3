package ai

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/domain/insight"
	"github.com/FACorreiaa/travelmind/internal/app/domain/itinerary"
	"github.com/FACorreiaa/travelmind/internal/app/domain/prompts"
	"github.com/FACorreiaa/travelmind/internal/app/models"
	"github.com/FACorreiaa/travelmind/internal/app/observability/metrics"
)

// ReplanPlaceholder is returned by Replan until replanning is implemented.
const ReplanPlaceholder = "Replanning logic would go here, utilizing similar AI capabilities."

// DefaultReplanTrigger applies when a replan request names no trigger.
const DefaultReplanTrigger = "rain"

// Completer is the completion client contract: both calls always return text.
type Completer interface {
	Generate(ctx context.Context, prompt string) string
	GenerateJSON(ctx context.Context, prompt string) string
}

var _ Service = (*ServiceImpl)(nil)

// Service defines the travel intelligence operations.
type Service interface {
	Chat(ctx context.Context, req models.ChatRequest) string
	Plan(ctx context.Context, req models.TripRequest) itinerary.Result
	Replan(ctx context.Context, req models.ReplanRequest) models.ReplanResponse
	Insight(ctx context.Context, req models.InsightRequest) insight.Result
}

type ServiceImpl struct {
	completer Completer
	logger    *zap.Logger
}

func NewService(completer Completer, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{completer: completer, logger: logger}
}

// Chat returns the provider's answer verbatim, including error strings.
func (s *ServiceImpl) Chat(ctx context.Context, req models.ChatRequest) string {
	ctx, span := otel.Tracer("AIService").Start(ctx, "AIService.Chat", trace.WithAttributes(
		attribute.Int("message.length", len(req.Message)),
		attribute.Bool("has_context", req.Context != nil),
	))
	defer span.End()

	return s.completer.Generate(ctx, prompts.BuildChatPrompt(req))
}

// Plan asks for a structured itinerary and validates it, substituting the
// fallback document when the output is unusable.
func (s *ServiceImpl) Plan(ctx context.Context, req models.TripRequest) itinerary.Result {
	l := s.logger.With(zap.String("method", "Plan"), zap.String("destination", req.Destination))

	ctx, span := otel.Tracer("AIService").Start(ctx, "AIService.Plan", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.Int("duration_days", req.DurationDays),
		attribute.String("pace", req.Preferences.Pace),
	))
	defer span.End()

	raw := s.completer.GenerateJSON(ctx, prompts.BuildItineraryPrompt(req))
	result := itinerary.Validate(raw, req)

	if result.Degraded {
		l.Warn("Itinerary output unusable, serving fallback document", zap.String("reason", result.Reason))
		span.SetStatus(codes.Error, "fallback itinerary")
		span.SetAttributes(attribute.String("fallback.reason", result.Reason))
		metrics.Get().ItineraryFallbacksTotal.Add(ctx, 1)
		return result
	}

	span.SetStatus(codes.Ok, "itinerary generated")
	l.Debug("Itinerary generated")
	return result
}

// Replan records the trigger and returns the placeholder message. It does
// not call the provider.
func (s *ServiceImpl) Replan(ctx context.Context, req models.ReplanRequest) models.ReplanResponse {
	trigger := req.Trigger
	if trigger == "" {
		trigger = DefaultReplanTrigger
	}

	_, span := otel.Tracer("AIService").Start(ctx, "AIService.Replan", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.String("trigger", trigger),
	))
	defer span.End()

	s.logger.Info("Replan requested",
		zap.String("destination", req.Destination),
		zap.String("trigger", trigger))

	return models.ReplanResponse{Message: ReplanPlaceholder}
}

// Insight renders the category report prompt and parses whatever comes back.
func (s *ServiceImpl) Insight(ctx context.Context, req models.InsightRequest) insight.Result {
	category, known := models.ParseCategory(req.Category)

	ctx, span := otel.Tracer("AIService").Start(ctx, "AIService.Insight", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.String("category", string(category)),
		attribute.Bool("known_category", known),
	))
	defer span.End()

	raw := s.completer.GenerateJSON(ctx, prompts.BuildInsightPrompt(req))
	result := insight.Parse(raw)

	if result.Degraded {
		s.logger.Warn("Insight output is not valid JSON",
			zap.String("destination", req.Destination),
			zap.String("category", req.Category))
		span.SetStatus(codes.Error, "insight parse failed")
		metrics.Get().InsightParseFailuresTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("category", string(category))))
	}

	return result
}
