package usecase

import (
	"whatameating/internal/domain/entity"
	"whatameating/internal/domain/repository"
)

// ResolveDetail maps a classification to what we show the user. Labels
// without a mapping entry fall back to a nominal estimate.
func ResolveDetail(item entity.ClassificationResult, table repository.FoodMapping) entity.FoodDetail {
	rec, ok := table.Lookup(item.Label)
	if !ok {
		return entity.FoodDetail{
			DisplayName:    item.Label,
			Calories:       entity.DefaultCalories,
			Recommendation: entity.DefaultRecommendation,
		}
	}
	return entity.FoodDetail{
		DisplayName:    rec.DisplayName,
		Calories:       rec.Calories,
		Recommendation: rec.Recommendation,
	}
}
