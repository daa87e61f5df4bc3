package media

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

const maxVideoResults = 6

// VideoSearcher finds videos for a free-text query.
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string) ([]models.Video, error)
}

// YouTubeSearcher queries the YouTube Data API v3 search endpoint.
type YouTubeSearcher struct {
	service *youtube.Service
}

// NewYouTubeSearcher builds a searcher authenticated with apiKey. Extra
// options are passed to the API client.
func NewYouTubeSearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeSearcher, error) {
	if apiKey == "" {
		return nil, models.ErrVideoSearchDisabled
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &YouTubeSearcher{service: svc}, nil
}

func (s *YouTubeSearcher) SearchVideos(ctx context.Context, query string) ([]models.Video, error) {
	resp, err := s.service.Search.List([]string{"id", "snippet"}).
		Q(query).
		MaxResults(maxVideoResults).
		Type("video").
		VideoDefinition("high").
		RelevanceLanguage("en").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	videos := make([]models.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		v := models.Video{
			ID:          item.Id.VideoId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Channel:     item.Snippet.ChannelTitle,
			PublishTime: item.Snippet.PublishedAt,
		}
		if t := item.Snippet.Thumbnails; t != nil && t.High != nil {
			v.Thumbnail = t.High.Url
		}
		videos = append(videos, v)
	}
	return videos, nil
}
