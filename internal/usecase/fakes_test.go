package usecase

import (
	"context"
	"sync"

	"whatameating/internal/domain/entity"
)

type fakeClassifier struct {
	results []entity.ClassificationResult
	err     error

	gotImage     []byte
	gotThreshold string
}

func (f *fakeClassifier) Predict(ctx context.Context, image []byte, scoreThreshold string) ([]entity.ClassificationResult, error) {
	f.gotImage = image
	f.gotThreshold = scoreThreshold
	return f.results, f.err
}

type mapTable map[string]entity.FoodRecord

func (m mapTable) Lookup(label string) (entity.FoodRecord, bool) {
	rec, ok := m[label]
	return rec, ok
}

type fakeAuditStore struct {
	mu      sync.Mutex
	entries []entity.AuditLogEntry
	err     error
}

func (f *fakeAuditStore) Append(ctx context.Context, entry entity.AuditLogEntry) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	if f.err != nil {
		return "", f.err
	}
	return "1-0", nil
}
