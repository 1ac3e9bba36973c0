package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/krotrn/MERN-Project/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GenreService struct {
	genres GenreStore
	movies MovieStore
}

func NewGenreService(g GenreStore, m MovieStore) *GenreService {
	return &GenreService{genres: g, movies: m}
}

func (s *GenreService) Create(ctx context.Context, name, description string) (*models.GenreDoc, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: missing required field: name", ErrBadInput)
	}
	if !models.ValidGenreName(name) {
		return nil, fmt.Errorf("%w: genre name must be alphanumeric and at most %d characters", ErrValidation, models.GenreNameMaxLen)
	}
	name = models.NormalizeGenreName(name)

	existing, err := s.genres.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: genre already exists", ErrDuplicate)
	}

	now := time.Now().UTC()
	g := &models.GenreDoc{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.genres.Insert(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GenreService) Get(ctx context.Context, id primitive.ObjectID) (*models.GenreDoc, error) {
	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: genre not found", ErrNotFound)
	}
	return g, nil
}

func (s *GenreService) GetAll(ctx context.Context) ([]models.GenreDoc, error) {
	return s.genres.FindAll(ctx)
}

func (s *GenreService) Update(ctx context.Context, id primitive.ObjectID, name, description string) (*models.GenreDoc, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: missing required field: name", ErrBadInput)
	}
	if !models.ValidGenreName(name) {
		return nil, fmt.Errorf("%w: genre name must be alphanumeric and at most %d characters", ErrValidation, models.GenreNameMaxLen)
	}
	name = models.NormalizeGenreName(name)

	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: genre not found", ErrNotFound)
	}

	taken, err := s.genres.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken != nil && taken.ID != id {
		return nil, fmt.Errorf("%w: genre already exists", ErrDuplicate)
	}

	update := bson.M{
		"name":      name,
		"updatedAt": time.Now().UTC(),
	}
	if description != "" {
		update["description"] = strings.TrimSpace(description)
	}

	if err := s.genres.UpdateByID(ctx, id, update); err != nil {
		return nil, err
	}
	return s.genres.FindByID(ctx, id)
}

// Delete bloquea el borrado si el género todavía está referenciado por
// alguna película: mejor un 409 explícito que dejar referencias
// huérfanas en el catálogo.
func (s *GenreService) Delete(ctx context.Context, id primitive.ObjectID) error {
	refs, err := s.movies.CountByGenre(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: %d movies still reference this genre", ErrGenreInUse, refs)
	}

	deleted, err := s.genres.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: genre not found", ErrNotFound)
	}
	return nil
}
