// Package prompts turns typed requests into the exact text sent to the
// completion provider. Every builder is pure: same request, same prompt.
package prompts

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

const itinerarySystemInstruction = `You are the 'TravelMind Intelligence Engine', an advanced AI travel planner.
Your goal is to create a hyper-personalized, logistic-optimized travel itinerary.

CRITICAL OUTPUT RULES:
1. Respond ONLY with valid JSON.
2. Do NOT act like a chatbot. Do not say "Here is your plan". Just JSON.
3. The JSON must match the specific schema provided below.`

const itinerarySchema = `REQUIRED JSON STRUCTURE:
{
  "trip_summary": {
    "title": "String",
    "description": "Short overview of the vibe",
    "sustainability_score": "Integer 1-10",
    "estimated_total_cost": "String"
  },
  "days": [
    {
      "day": 1,
      "date": "String",
      "theme": "String (e.g., 'Historical Immersion')",
      "weather_prediction": "String (e.g., 'Sunny, 24°C')",
      "activities": [
        {
          "time": "String (e.g., '10:00 AM')",
          "title": "String",
          "type": "%s",
          "description": "String",
          "location": "String",
          "cost_estimate": "String",
          "crowd_prediction": "%s",
          "ai_reasoning": "String (Why this specific spot? Link to user prefs)",
          "alternatives": [
            { "title": "String", "reason": "String (e.g., 'If rain', 'Cheaper option')" }
          ]
        }
      ]
    }
  ]
}`

// paceCaps maps case-folded pace labels to the activity ceiling per day.
var paceCaps = map[string]int{
	"relaxed":    3,
	"slow":       3,
	"moderate":   4,
	"balanced":   4,
	"fast-paced": 6,
	"fast paced": 6,
	"fast":       6,
	"packed":     6,
}

// ActivityCap returns the per-day activity ceiling for a pace label, or 0 when
// the label is not one the planner knows.
func ActivityCap(pace string) int {
	// Casers carry state, so each call gets its own.
	return paceCaps[cases.Fold().String(strings.TrimSpace(pace))]
}

// BuildItineraryPrompt renders the full schema-constrained planning prompt.
func BuildItineraryPrompt(req models.TripRequest) string {
	var b strings.Builder

	b.WriteString(itinerarySystemInstruction)
	b.WriteString("\n\n")
	b.WriteString(optimizationDirectives(req.Preferences.Pace))
	b.WriteString("\n\n")
	b.WriteString(tripContext(req))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, itinerarySchema,
		strings.Join(models.ActivityTypes, "|"),
		strings.Join(models.CrowdLevels, "|"))

	return b.String()
}

func optimizationDirectives(pace string) string {
	pacing := fmt.Sprintf("- Pacing: Respect the user's requested pace (%s).", pace)
	if n := ActivityCap(pace); n > 0 {
		pacing = fmt.Sprintf("- Pacing: Respect the user's requested pace (%s = max %d activities/day).", pace, n)
	}

	return strings.Join([]string{
		"OPTIMIZATION CRITERIA:",
		"- Logic: Minimizing travel time between spots (clustering).",
		pacing,
		`- Context: heavily weigh the 'natural_language_prompt' for intent (e.g., if they say "I hate waking up early" or dislike early mornings, start days at 11 AM).`,
		`- Explainability: Every choice must have an "ai_reasoning" field explaining WHY it fits.`,
	}, "\n")
}

func tripContext(req models.TripRequest) string {
	p := req.Preferences
	return fmt.Sprintf(`TRIP DETAILS:
- Destination: %s
- Duration: %d days
- Dates: %s
- Budget: %s
- Group Size: %d people

USER PREFERENCES:
- Pace: %s
- Styles: %s
- Constraints: %s, %s
- Specific Request (Intent): "%s"`,
		req.Destination,
		req.DurationDays,
		req.Dates,
		req.Budget,
		req.GroupSize,
		p.Pace,
		strings.Join(p.TravelStyle, ", "),
		orNone(p.Accessibility),
		orNone(p.DietaryRestrictions),
		orNone(req.NaturalLanguagePrompt),
	)
}

func orNone(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "None"
	}
	return *s
}
