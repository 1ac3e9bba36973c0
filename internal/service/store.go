package service

import (
	"context"

	"github.com/krotrn/MERN-Project/internal/models"
	"github.com/krotrn/MERN-Project/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaces sobre los repositorios de Mongo. Los servicios dependen
// de esto y no de los structs concretos, así los tests corren con
// stores en memoria.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error
	FindAll(ctx context.Context) ([]models.UserDoc, error)
}

type GenreStore interface {
	FindByName(ctx context.Context, name string) (*models.GenreDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.GenreDoc, error)
	FindAll(ctx context.Context) ([]models.GenreDoc, error)
	Insert(ctx context.Context, g *models.GenreDoc) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type MovieStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MovieDoc, error)
	FindByTitle(ctx context.Context, title string) (*models.MovieDoc, error)
	Insert(ctx context.Context, m *models.MovieDoc) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	CountByGenre(ctx context.Context, genreID primitive.ObjectID) (int64, error)
	List(ctx context.Context, p repository.ListParams) ([]models.MovieDoc, int64, error)
	Newest(ctx context.Context, limit int) ([]models.MovieDoc, error)
	Top(ctx context.Context, limit int) ([]models.MovieDoc, error)
	Random(ctx context.Context, size int) ([]models.MovieDoc, error)
	PushReviewIfAbsent(ctx context.Context, movieID primitive.ObjectID, rv models.ReviewDoc) (bool, error)
	PullReview(ctx context.Context, movieID, reviewID primitive.ObjectID) (bool, error)
	SetStats(ctx context.Context, movieID primitive.ObjectID, numReviews int, rating float64) error
}
