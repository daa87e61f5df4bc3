package models

// Preferences captures how the traveller wants the trip to feel.
type Preferences struct {
	Pace                string   `json:"pace" binding:"required"`
	TravelStyle         []string `json:"travel_style" binding:"required"`
	Accessibility       *string  `json:"accessibility,omitempty"`
	DietaryRestrictions *string  `json:"dietary_restrictions,omitempty"`
}

// TripRequest is the body of a plan request. It lives for a single request.
// Destination, dates and budget are free-form text and may be empty.
type TripRequest struct {
	Destination           string      `json:"destination"`
	Dates                 string      `json:"dates"`
	DurationDays          int         `json:"duration_days" binding:"required,min=1"`
	Budget                string      `json:"budget"`
	GroupSize             int         `json:"group_size" binding:"required,min=1"`
	Preferences           Preferences `json:"preferences"`
	NaturalLanguagePrompt *string     `json:"natural_language_prompt,omitempty"`
}

// ReplanRequest is a TripRequest plus the event that forced the change.
type ReplanRequest struct {
	TripRequest
	Trigger string `json:"trigger,omitempty"`
}

// ChatRequest is a free-text question to the travel companion.
type ChatRequest struct {
	Message string  `json:"message"`
	Context *string `json:"context,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// PlanResponse keeps the itinerary double encoded: clients parse ItineraryJSON again.
type PlanResponse struct {
	ItineraryJSON string `json:"itinerary_json"`
}

type ReplanResponse struct {
	Message string `json:"message"`
}
