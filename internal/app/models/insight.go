package models

// Category selects one of the fixed insight report templates.
type Category string

const (
	CategoryCrowd          Category = "crowd"
	CategorySafety         Category = "safety"
	CategoryBudget         Category = "budget"
	CategorySustainability Category = "sustainability"
	CategoryReviews        Category = "reviews"
	// CategoryGeneric covers every label outside the fixed set.
	CategoryGeneric Category = "generic"
)

// ParseCategory maps a request label onto the closed set. Unknown labels
// resolve to CategoryGeneric with ok=false.
func ParseCategory(label string) (Category, bool) {
	switch Category(label) {
	case CategoryCrowd, CategorySafety, CategoryBudget, CategorySustainability, CategoryReviews:
		return Category(label), true
	default:
		return CategoryGeneric, false
	}
}

// InsightRequest asks for a category report about a destination.
type InsightRequest struct {
	Destination string   `json:"destination"`
	Category    string   `json:"category"`
	Context     []string `json:"context,omitempty"`
	Budget      string   `json:"budget,omitempty"`
}

// InsightResponse wraps either the model's JSON or an {error, raw} envelope.
type InsightResponse struct {
	Insight any `json:"insight"`
}
