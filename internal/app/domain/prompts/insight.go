package prompts

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

const jsonOnly = "\n\nReturn ONLY valid JSON."

// BuildInsightPrompt renders the report template for the request's category.
// Labels outside the fixed set get an open-ended prompt with no schema.
func BuildInsightPrompt(req models.InsightRequest) string {
	category, _ := models.ParseCategory(req.Category)
	d := req.Destination

	switch category {
	case models.CategoryCrowd:
		return fmt.Sprintf(`Provide a real-time crowd intelligence report for %s.
Include:
1. 'hourly_forecast': Array of 7 objects with 'time' (8AM to 8PM) and 'density' (0-100).
2. 'major_spots': Array of 3 key attractions in %s with 'name', 'status' (Low/Moderate/High), 'density' (0-100), and 'wait_time' (mins).
3. 'advice': A specific tip to avoid crowds.`, d, d) + jsonOnly

	case models.CategorySafety:
		return fmt.Sprintf(`Provide a live safety intelligence report for %s.
Include:
1. 'score': Safety rating (0-100).
2. 'status': Brief status (e.g., 'Very Safe', 'Exercise Caution').
3. 'advisories': List of 3 specific current safety tips for tourists.
4. 'emergency': Emergency phone number.
5. 'risks': List of 3 potential risks (e.g., 'Pickpockets in Metro', 'Sun Exposure').`, d) + jsonOnly

	case models.CategoryBudget:
		budget := req.Budget
		if strings.TrimSpace(budget) == "" {
			budget = "a typical travel budget"
		}
		return fmt.Sprintf(`Provide a professional smart budget saving report for %[1]s.
Include:
1. 'savings_strategies': 3 specific tips to save money in %[1]s.
2. 'cost_index': Relative cost for food, transport, and hotels (Low/Mid/High).
3. 'hidden_deals': 2 specific local gems that are cheap or free.
4. 'budget_analysis': A 2-sentence expert summary of how to manage %[2]s in %[1]s.
5. 'suggested_split': {'Accommodation': %%, 'Food': %%, 'Transport': %%, 'Activities': %%} based on the destination.
6. 'top_priority_save': The single best way to save money here.
7. 'typical_expenses': List of 5 typical tourist expenses (e.g. 'Coffee', 'Quick Lunch', 'Local Transport') with estimated prices for %[1]s.`, d, budget) + jsonOnly

	case models.CategorySustainability:
		return fmt.Sprintf(`Provide a live sustainability / eco-travel report for %[1]s.
Include:
1. 'footprint_data': Array of 3 objects with 'name' (Flights, Hotel, Transport), 'value' (CO2 in kg), and 'color' (hex).
2. 'eco_swaps': Array of 2 objects with 'original' (bad option), 'swap' (good option), 'co2_saved' (kg), and 'financial_save' (string).
3. 'local_eco_status': A specific eco-fact about %[1]s.`, d) + jsonOnly

	case models.CategoryReviews:
		places := ""
		if len(req.Context) > 0 {
			places = " for these specific places: " + strings.Join(req.Context, ", ")
		}
		return fmt.Sprintf(`Provide a real-time sentiment and review report for %[1]s%[2]s.
Include:
1. 'trust_score': Overall rating (0-5.0).
2. 'pros': List of 3 strings (What people love).
3. 'cons': List of 3 strings (Common complaints).
4. 'reviews': Array of 3 objects with 'author', 'rating' (1-5), 'title', 'text', 'sentiment' (Positive/Neutral/Negative), and 'date' (e.g., '3 days ago').
   - Ensure reviews feel real, specific to %[1]s and the mentioned places, and reflect actual traveler feedback.
5. 'ai_summary': A concise summary of the overall vibe.`, d, places) + jsonOnly

	default:
		return fmt.Sprintf("Provide a generic travel intelligence report for %s regarding %s. Return JSON.", d, req.Category)
	}
}

// InsightFields lists the top-level keys each fixed template asks for.
var InsightFields = map[models.Category][]string{
	models.CategoryCrowd:          {"hourly_forecast", "major_spots", "advice"},
	models.CategorySafety:         {"score", "status", "advisories", "emergency", "risks"},
	models.CategoryBudget:         {"savings_strategies", "cost_index", "hidden_deals", "budget_analysis", "suggested_split", "top_priority_save", "typical_expenses"},
	models.CategorySustainability: {"footprint_data", "eco_swaps", "local_eco_status"},
	models.CategoryReviews:        {"trust_score", "pros", "cons", "reviews", "ai_summary"},
}
