package entity

// ClassificationResult is one (label, confidence) pair returned by the model.
type ClassificationResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"` // in [0,1]
}

// Recognition is the outcome of one upload after resolution.
type Recognition struct {
	Results []ClassificationResult
	Details []FoodDetail
	Text    string
}
