package models

// Activity types and crowd levels the model is asked to choose from.
const (
	ActivityTransport = "transport"
	ActivityHotel     = "hotel"
	ActivityFood      = "food"
	ActivityActivity  = "activity"
	ActivityBreak     = "break"

	CrowdLow      = "Low"
	CrowdModerate = "Moderate"
	CrowdHigh     = "High"
	CrowdExtreme  = "Extreme"
)

var (
	ActivityTypes = []string{ActivityTransport, ActivityHotel, ActivityFood, ActivityActivity, ActivityBreak}
	CrowdLevels   = []string{CrowdLow, CrowdModerate, CrowdHigh, CrowdExtreme}
)

// ItineraryDocument is the structured plan returned to the client.
type ItineraryDocument struct {
	TripSummary TripSummary `json:"trip_summary"`
	Days        []DayPlan   `json:"days"`
}

type TripSummary struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	SustainabilityScore int    `json:"sustainability_score"`
	EstimatedTotalCost  string `json:"estimated_total_cost"`
}

type DayPlan struct {
	Day               int            `json:"day"`
	Date              string         `json:"date"`
	Theme             string         `json:"theme"`
	WeatherPrediction string         `json:"weather_prediction"`
	Activities        []PlanActivity `json:"activities"`
}

// PlanActivity is one slot in a day. AIReasoning is mandatory in the prompt contract.
type PlanActivity struct {
	Time            string        `json:"time"`
	Title           string        `json:"title"`
	Type            string        `json:"type"`
	Description     string        `json:"description"`
	Location        string        `json:"location"`
	CostEstimate    string        `json:"cost_estimate"`
	AIReasoning     string        `json:"ai_reasoning"`
	CrowdPrediction string        `json:"crowd_prediction"`
	Alternatives    []Alternative `json:"alternatives,omitempty"`
}

type Alternative struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}
