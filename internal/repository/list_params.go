package repository

import "go.mongodb.org/mongo-driver/bson/primitive"

// campos por los que se puede ordenar el listado; cualquier otra cosa
// cae en createdAt para no dejar inyectar campos arbitrarios al sort
var allowedSorts = map[string]bool{
	"createdAt":  true,
	"title":      true,
	"year":       true,
	"numReviews": true,
	"rating":     true,
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type ListParams struct {
	Page  int
	Limit int
	Sort  string
	Order string // asc | desc
	Year  int
	Genre *primitive.ObjectID
}

// Normalized devuelve una copia con defaults aplicados y el sort
// pasado por la allow-list.
func (p ListParams) Normalized() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if !allowedSorts[p.Sort] {
		p.Sort = "createdAt"
	}
	if p.Order != "asc" {
		p.Order = "desc"
	}
	return p
}

// SortValue traduce asc/desc al 1/-1 de Mongo.
func (p ListParams) SortValue() int {
	if p.Order == "asc" {
		return 1
	}
	return -1
}

func (p ListParams) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// TotalPages calcula ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
