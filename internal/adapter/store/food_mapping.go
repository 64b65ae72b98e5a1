package store

import (
	"fmt"
	"strconv"
	"strings"

	"whatameating/internal/domain/entity"

	"github.com/magiconair/properties"
)

// FoodMapping is the label -> food record table. It is read-only once loaded
// and safe for concurrent readers.
type FoodMapping struct {
	records map[string]entity.FoodRecord
}

// LoadFoodMapping reads a flat key=value properties file where each value is
// "displayName,calories,recommendation". Only whole lines starting with # or !
// are comments, and values are taken literally (no ${var} expansion).
func LoadFoodMapping(path string) (*FoodMapping, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read food mapping %s: %w", path, err)
	}

	raw := props.Map()
	records := make(map[string]entity.FoodRecord, len(raw))
	for label, value := range raw {
		rec, err := ParseFoodRecord(value)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", label, err)
		}
		records[label] = rec
	}

	return &FoodMapping{records: records}, nil
}

// ParseFoodRecord splits a mapping value into exactly three fields.
func ParseFoodRecord(value string) (entity.FoodRecord, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return entity.FoodRecord{}, fmt.Errorf("%w: want 3 comma-separated fields, got %d in %q",
			entity.ErrMalformedMappingEntry, len(parts), value)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return entity.FoodRecord{}, fmt.Errorf("%w: empty display name in %q", entity.ErrMalformedMappingEntry, value)
	}

	calories, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || calories < 0 {
		return entity.FoodRecord{}, fmt.Errorf("%w: calories %q is not a non-negative integer",
			entity.ErrMalformedMappingEntry, parts[1])
	}

	return entity.FoodRecord{
		DisplayName:    name,
		Calories:       calories,
		Recommendation: strings.TrimSpace(parts[2]),
	}, nil
}

func (m *FoodMapping) Lookup(label string) (entity.FoodRecord, bool) {
	rec, ok := m.records[label]
	return rec, ok
}

func (m *FoodMapping) Len() int {
	return len(m.records)
}
