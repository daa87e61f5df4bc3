// Package itinerary checks model-produced itinerary documents and replaces
// anything unusable with a deterministic fallback built from the request.
package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/FACorreiaa/travelmind/internal/app/domain/completion"
	"github.com/FACorreiaa/travelmind/internal/app/models"
)

// documentSchema is the minimum a plan must satisfy to reach the client.
var documentSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"required": ["days"],
	"properties": {
		"days": {"type": "array", "minItems": 1}
	}
}`)

// Result is the validated document plus whether the fallback replaced it.
type Result struct {
	// Document is either the model's object (decoded with json.Number) or an
	// *models.ItineraryDocument fallback.
	Document any
	Degraded bool
	Reason   string
}

// JSON encodes the document for the itinerary_json envelope field.
func (r Result) JSON() (string, error) {
	b, err := json.Marshal(r.Document)
	if err != nil {
		return "", fmt.Errorf("encode itinerary: %w", err)
	}
	return string(b), nil
}

// Validate parses raw model output. Any decoding or schema failure yields the
// fallback document for req with Degraded set.
func Validate(raw string, req models.TripRequest) Result {
	doc, err := decode(raw)
	if err != nil {
		return Result{Document: Fallback(req), Degraded: true, Reason: err.Error()}
	}
	return Result{Document: doc}
}

func decode(raw string) (map[string]any, error) {
	cleaned := completion.StripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", models.ErrMalformedModelOutput)
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedModelOutput, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", models.ErrMalformedModelOutput)
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", models.ErrInvalidItinerary)
	}

	result, err := gojsonschema.Validate(documentSchema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidItinerary, err)
	}
	if !result.Valid() {
		var msgs bytes.Buffer
		for i, e := range result.Errors() {
			if i > 0 {
				msgs.WriteString("; ")
			}
			msgs.WriteString(e.String())
		}
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidItinerary, msgs.String())
	}

	return doc, nil
}

// Fallback builds the one-day placeholder plan shown when the model's
// output cannot be used.
func Fallback(req models.TripRequest) *models.ItineraryDocument {
	interests := "your interests"
	if len(req.Preferences.TravelStyle) > 0 {
		interests = "your interests in " + strings.Join(req.Preferences.TravelStyle, ", ")
	}

	return &models.ItineraryDocument{
		TripSummary: models.TripSummary{
			Title:               "Discovery of " + req.Destination,
			Description:         fmt.Sprintf("A comprehensive %d-day adventure in %s tailored to %s.", req.DurationDays, req.Destination, interests),
			SustainabilityScore: 9,
			EstimatedTotalCost:  req.Budget,
		},
		Days: []models.DayPlan{{
			Day:               1,
			Date:              "Initial Arrival",
			Theme:             "Local Immersion",
			WeatherPrediction: "Clear skies, 24°C",
			Activities: []models.PlanActivity{
				{
					Time:            "10:00 AM",
					Title:           "Explore " + req.Destination + " Old Town",
					Type:            models.ActivityActivity,
					Description:     "Walk through the historical alleys and discover hidden architectural gems.",
					Location:        "Historic Center",
					CostEstimate:    "Free",
					AIReasoning:     "Historical context is essential for any first-time visitor.",
					CrowdPrediction: models.CrowdModerate,
				},
				{
					Time:            "01:00 PM",
					Title:           "Local Gastronomy Experience",
					Type:            models.ActivityFood,
					Description:     "Authentic lunch at a family-run heritage restaurant.",
					Location:        "Downtown Area",
					CostEstimate:    "$20",
					AIReasoning:     "Voted #1 for authentic local cuisine.",
					CrowdPrediction: models.CrowdHigh,
				},
			},
		}},
	}
}
