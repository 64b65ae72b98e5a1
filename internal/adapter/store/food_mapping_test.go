package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"whatameating/internal/domain/entity"
)

func writeMapping(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "food_mapping.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write mapping: %v", err)
	}
	return path
}

func TestLoadFoodMapping(t *testing.T) {
	path := writeMapping(t, "pizza=Pizza,285,Eat in moderation\n"+
		"# comment line\n"+
		"fried_rice=Fried Rice,238,Limit portion\n")

	m, err := LoadFoodMapping(path)
	if err != nil {
		t.Fatalf("LoadFoodMapping() error = %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	got, ok := m.Lookup("pizza")
	if !ok {
		t.Fatal("pizza not found")
	}
	want := entity.FoodRecord{DisplayName: "Pizza", Calories: 285, Recommendation: "Eat in moderation"}
	if got != want {
		t.Errorf("Lookup(pizza) = %+v, want %+v", got, want)
	}

	if _, ok := m.Lookup("sushi"); ok {
		t.Error("Lookup(sushi) found an entry that does not exist")
	}
}

func TestLoadFoodMappingKeepsValuesLiteral(t *testing.T) {
	t.Setenv("LESS", "-R")
	t.Setenv("HOME", "/root")
	path := writeMapping(t, "# drinks\n"+
		"! also a comment\n"+
		"soda=Soda,150,Drink $LESS often\n"+
		"coffee=Coffee,2,Drink black #1 pick\n"+
		"tea='Tea',2,Drink\n"+
		"cocoa=Cocoa,190,Made at ${HOME}\n")

	m, err := LoadFoodMapping(path)
	if err != nil {
		t.Fatalf("LoadFoodMapping() error = %v", err)
	}

	tests := []struct {
		label string
		want  entity.FoodRecord
	}{
		{"soda", entity.FoodRecord{DisplayName: "Soda", Calories: 150, Recommendation: "Drink $LESS often"}},
		{"coffee", entity.FoodRecord{DisplayName: "Coffee", Calories: 2, Recommendation: "Drink black #1 pick"}},
		{"tea", entity.FoodRecord{DisplayName: "'Tea'", Calories: 2, Recommendation: "Drink"}},
		{"cocoa", entity.FoodRecord{DisplayName: "Cocoa", Calories: 190, Recommendation: "Made at ${HOME}"}},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := m.Lookup(tt.label)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.label)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.label, got, tt.want)
			}
		})
	}
	if m.Len() != len(tests) {
		t.Errorf("Len() = %d, want %d", m.Len(), len(tests))
	}
}

func TestLoadShippedFoodMapping(t *testing.T) {
	m, err := LoadFoodMapping(filepath.Join("..", "..", "..", "data", "food_mapping.txt"))
	if err != nil {
		t.Fatalf("shipped mapping does not load: %v", err)
	}
	if m.Len() == 0 {
		t.Fatal("shipped mapping is empty")
	}
	got, ok := m.Lookup("pizza")
	want := entity.FoodRecord{DisplayName: "Pizza", Calories: 285, Recommendation: "Eat in moderation"}
	if !ok || got != want {
		t.Errorf("Lookup(pizza) = %+v, %v, want %+v", got, ok, want)
	}
}

func TestLoadFoodMappingMissingFile(t *testing.T) {
	_, err := LoadFoodMapping(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFoodMappingMalformed(t *testing.T) {
	path := writeMapping(t, "pizza=Pizza,285\n")
	_, err := LoadFoodMapping(path)
	if !errors.Is(err, entity.ErrMalformedMappingEntry) {
		t.Fatalf("LoadFoodMapping() error = %v, want ErrMalformedMappingEntry", err)
	}
}

func TestParseFoodRecord(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    entity.FoodRecord
		wantErr bool
	}{
		{
			name:  "three fields",
			value: "Pizza,285,Eat in moderation",
			want:  entity.FoodRecord{DisplayName: "Pizza", Calories: 285, Recommendation: "Eat in moderation"},
		},
		{
			name:  "spaces around fields",
			value: " Apple , 52 , Eat ",
			want:  entity.FoodRecord{DisplayName: "Apple", Calories: 52, Recommendation: "Eat"},
		},
		{
			name:  "empty recommendation is allowed",
			value: "Water,0,",
			want:  entity.FoodRecord{DisplayName: "Water", Calories: 0, Recommendation: ""},
		},
		{name: "too few fields", value: "Pizza,285", wantErr: true},
		{name: "too many fields", value: "Pizza,285,Eat,now", wantErr: true},
		{name: "calories not a number", value: "Pizza,lots,Eat", wantErr: true},
		{name: "negative calories", value: "Pizza,-5,Eat", wantErr: true},
		{name: "empty name", value: ",285,Eat", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFoodRecord(tt.value)
			if tt.wantErr {
				if !errors.Is(err, entity.ErrMalformedMappingEntry) {
					t.Fatalf("ParseFoodRecord(%q) error = %v, want ErrMalformedMappingEntry", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFoodRecord(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParseFoodRecord(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}
