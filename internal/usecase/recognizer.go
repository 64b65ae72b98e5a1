package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"whatameating/internal/domain/entity"
	"whatameating/internal/domain/repository"
)

const UndetectedMessage = "Unable to detect this object. What is it ?"

// Recognizer runs one photo through the classifier and the food table.
type Recognizer struct {
	classifier repository.Classifier
	foods      repository.FoodMapping
	threshold  string

	// observe is called with the duration of each prediction call.
	observe func(time.Duration)
}

func NewRecognizer(c repository.Classifier, foods repository.FoodMapping, scoreThreshold string) *Recognizer {
	return &Recognizer{classifier: c, foods: foods, threshold: scoreThreshold}
}

func (r *Recognizer) WithObserver(fn func(time.Duration)) *Recognizer {
	r.observe = fn
	return r
}

func (r *Recognizer) Recognize(ctx context.Context, image []byte) (*entity.Recognition, error) {
	start := time.Now()
	results, err := r.classifier.Predict(ctx, image, r.threshold)
	if r.observe != nil {
		r.observe(time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[PREDICT] %d result(s)", len(results))

	rec := &entity.Recognition{
		Results: results,
		Details: make([]entity.FoodDetail, 0, len(results)),
	}

	var sb strings.Builder
	for _, item := range results {
		detail := ResolveDetail(item, r.foods)
		rec.Details = append(rec.Details, detail)
		sb.WriteString(FormatBlock(detail, item.Score))
	}

	rec.Text = sb.String()
	if rec.Text == "" {
		rec.Text = UndetectedMessage
	}
	return rec, nil
}

// FormatBlock renders one detected item. Score is printed as a percentage
// with four decimals.
func FormatBlock(d entity.FoodDetail, score float64) string {
	return fmt.Sprintf("Result :  %s <br/> Score : %.4f%% <br/> Calories : %d <br/> Recommendation : %s",
		d.DisplayName, score*100, d.Calories, d.Recommendation)
}
