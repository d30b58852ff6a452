package entities

// Benefit is a static catalog entry describing a benefit type.
type Benefit struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}
