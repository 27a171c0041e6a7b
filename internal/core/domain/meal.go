package domain

// MealSummary is the shape returned by catalog list and search endpoints.
type MealSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Thumb string `json:"thumb"`
}

// Meal is the full catalog record returned by a by-id lookup.
type Meal struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Thumb        string `json:"thumb"`
	Category     string `json:"category"`
	Area         string `json:"area"`
	Instructions string `json:"instructions"`
	Youtube      string `json:"youtube,omitempty"`
}
