package media

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/models"
	"github.com/FACorreiaa/travelmind/internal/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// Service never fails: upstream problems degrade to empty results so the
// client can render without them.
type Service interface {
	Videos(ctx context.Context, query string) []models.Video
	Image(ctx context.Context, query string) *string
}

type ServiceImpl struct {
	videos VideoSearcher
	images ImageFinder
	logger *zap.Logger
}

// NewService accepts nil searchers for capabilities that are not configured.
func NewService(videos VideoSearcher, images ImageFinder, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{videos: videos, images: images, logger: logger}
}

func (s *ServiceImpl) Videos(ctx context.Context, query string) []models.Video {
	ctx, span := otel.Tracer("MediaService").Start(ctx, "MediaService.Videos", trace.WithAttributes(
		attribute.String("query", query),
	))
	defer span.End()

	if s.videos == nil {
		s.record(ctx, "video", models.ErrVideoSearchDisabled)
		s.logger.Warn("Video search requested but not configured", zap.String("query", query))
		return []models.Video{}
	}

	videos, err := s.videos.SearchVideos(ctx, query)
	s.record(ctx, "video", err)
	if err != nil {
		s.logger.Error("Video search failed", zap.String("query", query), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "video search failed")
		return []models.Video{}
	}

	span.SetAttributes(attribute.Int("results", len(videos)))
	return videos
}

func (s *ServiceImpl) Image(ctx context.Context, query string) *string {
	ctx, span := otel.Tracer("MediaService").Start(ctx, "MediaService.Image", trace.WithAttributes(
		attribute.String("query", query),
	))
	defer span.End()

	if s.images == nil {
		s.record(ctx, "image", models.ErrImageNotFound)
		return nil
	}

	url, err := s.images.FindImage(ctx, query)
	s.record(ctx, "image", err)
	if err != nil {
		s.logger.Warn("Image search failed", zap.String("query", query), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "image search failed")
		return nil
	}
	return &url
}

func (s *ServiceImpl) record(ctx context.Context, kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.Get().MediaRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}
