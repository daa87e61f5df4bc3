package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/domain/completion"
	"github.com/FACorreiaa/travelmind/internal/app/models"
)

type fakeCompleter struct {
	text      string
	json      string
	prompts   []string
	jsonCalls int
}

func (f *fakeCompleter) Generate(_ context.Context, prompt string) string {
	f.prompts = append(f.prompts, prompt)
	return f.text
}

func (f *fakeCompleter) GenerateJSON(_ context.Context, prompt string) string {
	f.prompts = append(f.prompts, prompt)
	f.jsonCalls++
	return f.json
}

func parisTrip() models.TripRequest {
	return models.TripRequest{
		Destination:  "Paris",
		Dates:        "May 1-3",
		DurationDays: 3,
		Budget:       "Medium",
		GroupSize:    2,
		Preferences:  models.Preferences{Pace: "Relaxed", TravelStyle: []string{"Art"}},
	}
}

func TestService_ChatReturnsTextVerbatim(t *testing.T) {
	f := &fakeCompleter{text: completion.ServiceUnavailableMessage}
	s := NewService(f, zap.NewNop())

	got := s.Chat(context.Background(), models.ChatRequest{Message: "Best time to visit Kyoto?"})

	assert.Equal(t, completion.ServiceUnavailableMessage, got)
	require.Len(t, f.prompts, 1)
	assert.Contains(t, f.prompts[0], "Best time to visit Kyoto?")
	assert.Contains(t, f.prompts[0], "general travel")
}

func TestService_PlanValid(t *testing.T) {
	f := &fakeCompleter{json: `{"trip_summary":{"title":"Paris"},"days":[{"day":1,"activities":[]}]}`}
	s := NewService(f, zap.NewNop())

	res := s.Plan(context.Background(), parisTrip())

	assert.False(t, res.Degraded)
	assert.Equal(t, 1, f.jsonCalls)
	assert.Contains(t, f.prompts[0], "Paris")
}

func TestService_PlanFallsBackOnEmptyObject(t *testing.T) {
	f := &fakeCompleter{json: completion.EmptyJSON}
	s := NewService(f, zap.NewNop())

	res := s.Plan(context.Background(), parisTrip())

	require.True(t, res.Degraded)
	doc, ok := res.Document.(*models.ItineraryDocument)
	require.True(t, ok)
	assert.Equal(t, "Discovery of Paris", doc.TripSummary.Title)
}

func TestService_ReplanNeverCallsProvider(t *testing.T) {
	f := &fakeCompleter{}
	s := NewService(f, zap.NewNop())

	res := s.Replan(context.Background(), models.ReplanRequest{TripRequest: parisTrip()})

	assert.Equal(t, ReplanPlaceholder, res.Message)
	assert.Empty(t, f.prompts)
}

func TestService_Insight(t *testing.T) {
	f := &fakeCompleter{json: `{"score": 82, "status": "Very Safe"}`}
	s := NewService(f, zap.NewNop())

	res := s.Insight(context.Background(), models.InsightRequest{Destination: "Paris", Category: "safety"})

	assert.False(t, res.Degraded)
	require.Len(t, f.prompts, 1)
	assert.Contains(t, f.prompts[0], "'advisories'")
}

func TestService_InsightParseFailure(t *testing.T) {
	f := &fakeCompleter{json: "AI Error: boom"}
	s := NewService(f, zap.NewNop())

	res := s.Insight(context.Background(), models.InsightRequest{Destination: "Paris", Category: "nightlife"})

	assert.True(t, res.Degraded)
	assert.Equal(t, map[string]any{"error": "Failed to parse AI response", "raw": "AI Error: boom"}, res.Value)
	assert.Contains(t, f.prompts[0], "regarding nightlife")
}

func TestService_InsightEmptyCategoryUsesGenericPrompt(t *testing.T) {
	f := &fakeCompleter{json: `{"overview": "busy"}`}
	s := NewService(f, zap.NewNop())

	res := s.Insight(context.Background(), models.InsightRequest{Destination: "Paris"})

	assert.False(t, res.Degraded)
	require.Len(t, f.prompts, 1)
	assert.Contains(t, f.prompts[0], "generic travel intelligence report for Paris")
}
