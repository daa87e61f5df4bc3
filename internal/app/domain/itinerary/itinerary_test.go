package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

func hyderabadTrip() models.TripRequest {
	return models.TripRequest{
		Destination:  "Hyderabad",
		Dates:        "2025-03-01 to 2025-03-04",
		DurationDays: 4,
		Budget:       "$800",
		GroupSize:    2,
		Preferences: models.Preferences{
			Pace:        "moderate",
			TravelStyle: []string{"food", "history"},
		},
	}
}

func TestValidate_PassesValidDocumentThrough(t *testing.T) {
	raw := `{"trip_summary":{"title":"Rome","sustainability_score":8},"days":[{"day":1,"activities":[]}]}`

	res := Validate(raw, hyderabadTrip())

	assert.False(t, res.Degraded)
	assert.Empty(t, res.Reason)
	doc, ok := res.Document.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("8"), doc["trip_summary"].(map[string]any)["sustainability_score"])

	out, err := res.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, raw, out)
}

func TestValidate_AllowsTrailingWhitespace(t *testing.T) {
	res := Validate("{\"days\":[{\"day\":1}]}\n\n  ", hyderabadTrip())
	assert.False(t, res.Degraded)
}

func TestValidate_StripsCodeFences(t *testing.T) {
	res := Validate("```json\n{\"days\":[{\"day\":1}]}\n```", hyderabadTrip())
	assert.False(t, res.Degraded)
}

func TestValidate_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"empty object", "{}"},
		{"prose", "Sorry, I cannot help with that."},
		{"array", `[{"days":[1]}]`},
		{"missing days", `{"trip_summary":{"title":"x"}}`},
		{"empty days", `{"days":[]}`},
		{"days not array", `{"days":"monday"}`},
		{"truncated", `{"days":[{"day":1}`},
		{"extra closing brace", `{"days":[{"day":1}]}}`},
		{"extra closing bracket", `{"days":[{"day":1}]}]`},
		{"second document", `{"days":[{"day":1}]} {"days":[{"day":2}]}`},
		{"provider error text", "AI Error: rate limited"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(tc.raw, hyderabadTrip())
			assert.True(t, res.Degraded)
			assert.NotEmpty(t, res.Reason)
			assert.IsType(t, &models.ItineraryDocument{}, res.Document)
		})
	}
}

func TestFallback_Hyderabad(t *testing.T) {
	doc := Fallback(hyderabadTrip())

	assert.Equal(t, "Discovery of Hyderabad", doc.TripSummary.Title)
	assert.Contains(t, doc.TripSummary.Description, "Hyderabad")
	assert.Equal(t, "A comprehensive 4-day adventure in Hyderabad tailored to your interests in food, history.", doc.TripSummary.Description)
	assert.Equal(t, 9, doc.TripSummary.SustainabilityScore)
	assert.Equal(t, "$800", doc.TripSummary.EstimatedTotalCost)

	require.Len(t, doc.Days, 1)
	day := doc.Days[0]
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, "Initial Arrival", day.Date)
	assert.Equal(t, "Local Immersion", day.Theme)
	assert.Equal(t, "Clear skies, 24°C", day.WeatherPrediction)

	require.Len(t, day.Activities, 2)
	assert.Equal(t, "10:00 AM", day.Activities[0].Time)
	assert.Equal(t, "Explore Hyderabad Old Town", day.Activities[0].Title)
	assert.Equal(t, models.ActivityActivity, day.Activities[0].Type)
	assert.Equal(t, "Free", day.Activities[0].CostEstimate)
	assert.Equal(t, models.CrowdModerate, day.Activities[0].CrowdPrediction)
	assert.Equal(t, "01:00 PM", day.Activities[1].Time)
	assert.Equal(t, "Local Gastronomy Experience", day.Activities[1].Title)
	assert.Equal(t, models.ActivityFood, day.Activities[1].Type)
	assert.Equal(t, "$20", day.Activities[1].CostEstimate)
	assert.Equal(t, models.CrowdHigh, day.Activities[1].CrowdPrediction)
}

func TestFallback_NoStyles(t *testing.T) {
	req := hyderabadTrip()
	req.Preferences.TravelStyle = nil

	doc := Fallback(req)

	assert.Equal(t, "A comprehensive 4-day adventure in Hyderabad tailored to your interests.", doc.TripSummary.Description)
}

func TestFallback_EncodesWithoutAlternatives(t *testing.T) {
	res := Validate("", hyderabadTrip())

	out, err := res.JSON()
	require.NoError(t, err)
	assert.NotContains(t, out, "alternatives")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "trip_summary")
	assert.Len(t, decoded["days"], 1)
}
