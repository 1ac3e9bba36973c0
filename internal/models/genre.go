package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const GenreNameMaxLen = 32

var genreNameRe = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

type GenreDoc struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidGenreName acepta solo alfanumérico + espacios, no vacío, máx 32.
func ValidGenreName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > GenreNameMaxLen {
		return false
	}
	return genreNameRe.MatchString(name)
}

// NormalizeGenreName deja el nombre como palabras capitalizadas ("sci fi" -> "Sci Fi").
func NormalizeGenreName(name string) string {
	return NormalizeTitle(name)
}
