package entity

// Fallback values used when a label has no mapping entry.
const (
	DefaultCalories       = 100
	DefaultRecommendation = "Eat"
)

// FoodRecord is one validated line of the food mapping file.
type FoodRecord struct {
	DisplayName    string
	Calories       int
	Recommendation string
}

// FoodDetail is what gets shown to the user for a single detected item.
type FoodDetail struct {
	DisplayName    string
	Calories       int
	Recommendation string
}
