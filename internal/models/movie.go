package models

import (
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TitleMaxLen    = 200
	DetailMaxLen   = 2000
	CastNameMaxLen = 100
	CommentMaxLen  = 500

	MinYear = 1900

	RatingMin = 1
	RatingMax = 5

	// imagen de fallback cuando el admin no sube una
	DefaultImage = "https://via.placeholder.com/300x450?text=No+Image"
)

type ReviewDoc struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	UserName  string             `json:"userName" bson:"userName"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type MovieDoc struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	Image      string             `json:"image" bson:"image"`
	Year       int                `json:"year" bson:"year"`
	Genre      primitive.ObjectID `json:"genre" bson:"genre"`
	Detail     string             `json:"detail" bson:"detail"`
	Cast       []string           `json:"cast" bson:"cast"`
	Reviews    []ReviewDoc        `json:"reviews" bson:"reviews"`
	NumReviews int                `json:"numReviews" bson:"numReviews"`
	Rating     float64            `json:"rating" bson:"rating"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeTitle pasa todo a minúsculas y capitaliza el inicio de cada
// palabra ("el señor de los anillos" -> "El Señor De Los Anillos").
// Antes esto vivía en un hook pre-save; ahora es función explícita que
// los servicios llaman antes de persistir.
func NormalizeTitle(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))

	prevWord := false
	for _, r := range strings.ToLower(s) {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			r = unicode.ToUpper(r)
		}
		prevWord = isWord
		b.WriteRune(r)
	}
	return b.String()
}

// TrimCast limpia cada nombre del cast y descarta entradas vacías.
func TrimCast(cast []string) []string {
	out := make([]string, 0, len(cast))
	for _, c := range cast {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// RecomputeStats recalcula numReviews y rating a partir de la lista
// embebida. Es la única fuente de verdad de esos campos derivados:
// se invoca después de cada mutación de reviews.
func (m *MovieDoc) RecomputeStats() {
	m.NumReviews = len(m.Reviews)
	if m.NumReviews == 0 {
		m.Rating = 0
		return
	}
	total := 0
	for _, rv := range m.Reviews {
		total += rv.Rating
	}
	m.Rating = float64(total) / float64(m.NumReviews)
}

// HasReviewBy indica si el usuario ya dejó review en esta película.
func (m *MovieDoc) HasReviewBy(userID primitive.ObjectID) bool {
	for _, rv := range m.Reviews {
		if rv.User == userID {
			return true
		}
	}
	return false
}
