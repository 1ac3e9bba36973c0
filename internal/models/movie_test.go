package models

import (
	"math"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase words", "the dark knight", "The Dark Knight"},
		{"all caps", "INCEPTION", "Inception"},
		{"mixed case", "pUlP fIcTiOn", "Pulp Fiction"},
		{"hyphenated", "spider-man", "Spider-Man"},
		{"leading digits", "12 angry men", "12 Angry Men"},
		{"digits inside word stay glued", "se7en", "Se7en"},
		{"surrounding spaces trimmed", "  heat  ", "Heat"},
		{"single word", "alien", "Alien"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.input); got != tt.expected {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimCast(t *testing.T) {
	got := TrimCast([]string{"  Al Pacino ", "", "   ", "Robert De Niro"})
	want := []string{"Al Pacino", "Robert De Niro"}

	if len(got) != len(want) {
		t.Fatalf("TrimCast devolvió %d entradas, esperaba %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TrimCast[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecomputeStats(t *testing.T) {
	review := func(rating int) ReviewDoc {
		return ReviewDoc{ID: primitive.NewObjectID(), User: primitive.NewObjectID(), Rating: rating}
	}

	tests := []struct {
		name       string
		ratings    []int
		wantCount  int
		wantRating float64
	}{
		{"sin reviews", nil, 0, 0},
		{"una review", []int{4}, 1, 4},
		{"promedio entero", []int{1, 5}, 2, 3},
		{"promedio fraccionario", []int{5, 4, 4}, 3, 13.0 / 3.0},
		{"todas iguales", []int{2, 2, 2, 2}, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MovieDoc{}
			for _, r := range tt.ratings {
				m.Reviews = append(m.Reviews, review(r))
			}
			m.RecomputeStats()

			if m.NumReviews != tt.wantCount {
				t.Errorf("NumReviews = %d, want %d", m.NumReviews, tt.wantCount)
			}
			if m.NumReviews != len(m.Reviews) {
				t.Errorf("NumReviews (%d) no coincide con len(Reviews) (%d)", m.NumReviews, len(m.Reviews))
			}
			if math.Abs(m.Rating-tt.wantRating) > 1e-9 {
				t.Errorf("Rating = %v, want %v", m.Rating, tt.wantRating)
			}
		})
	}
}

func TestRecomputeStatsAfterRemoval(t *testing.T) {
	m := MovieDoc{Reviews: []ReviewDoc{
		{ID: primitive.NewObjectID(), Rating: 5},
		{ID: primitive.NewObjectID(), Rating: 1},
	}}
	m.RecomputeStats()

	// sacamos una y recalculamos: los derivados siguen a la lista
	m.Reviews = m.Reviews[:1]
	m.RecomputeStats()
	if m.NumReviews != 1 || m.Rating != 5 {
		t.Errorf("después de borrar: NumReviews=%d Rating=%v, want 1 y 5", m.NumReviews, m.Rating)
	}

	m.Reviews = nil
	m.RecomputeStats()
	if m.NumReviews != 0 || m.Rating != 0 {
		t.Errorf("lista vacía: NumReviews=%d Rating=%v, want 0 y 0", m.NumReviews, m.Rating)
	}
}

func TestHasReviewBy(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	m := MovieDoc{Reviews: []ReviewDoc{{User: alice, Rating: 4}}}

	if !m.HasReviewBy(alice) {
		t.Error("alice ya reviewó y HasReviewBy devolvió false")
	}
	if m.HasReviewBy(bob) {
		t.Error("bob nunca reviewó y HasReviewBy devolvió true")
	}
}
