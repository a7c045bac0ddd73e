package ai

import (
	"testing"

	"financial-saver-go/internal/models"
)

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Food & Dining", Type: "expense"},
		{ID: 2, Name: "Shopping", Type: "expense"},
		{ID: 3, Name: "Other", Type: "expense"},
	}
}

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		name           string
		answer         string
		confidence     float64
		wantID         uint
		wantConfidence float64
	}{
		{"exact match", "Shopping", 0.92, 2, 0.92},
		{"case insensitive", "food & dining", 0.8, 1, 0.8},
		{"no match falls back to first", "Cryptocurrency", 0.99, 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchCategory(sampleCategories(), tt.answer, tt.confidence, "because")
			if got.CategoryID != tt.wantID {
				t.Errorf("category id = %d, want %d", got.CategoryID, tt.wantID)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestCategorizationSchemaParses(t *testing.T) {
	// The embedded schema must load; NewClassifier panics the server on a
	// broken schema otherwise.
	if categorizationSchema == "" {
		t.Fatal("embedded schema is empty")
	}
}
