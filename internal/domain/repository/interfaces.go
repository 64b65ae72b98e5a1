package repository

import (
	"context"
	"whatameating/internal/domain/entity"
)

type Classifier interface {
	Predict(ctx context.Context, image []byte, scoreThreshold string) ([]entity.ClassificationResult, error)
}

type FoodMapping interface {
	Lookup(label string) (entity.FoodRecord, bool)
}

type AuditStore interface {
	Append(ctx context.Context, entry entity.AuditLogEntry) (string, error)
}
