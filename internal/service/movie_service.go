package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/krotrn/MERN-Project/internal/cache"
	"github.com/krotrn/MERN-Project/internal/models"
	"github.com/krotrn/MERN-Project/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	curatedListSize = 10

	cacheKeyNew = "movies:new"
	cacheKeyTop = "movies:top"
	cacheTTLSec = 60
)

type MovieService struct {
	movies MovieStore
	genres GenreStore
}

func NewMovieService(m MovieStore, g GenreStore) *MovieService {
	return &MovieService{movies: m, genres: g}
}

type CreateMovieData struct {
	Title  string
	Image  string
	Year   int
	Genre  primitive.ObjectID
	Detail string
	Cast   []string
}

type UpdateMovieData struct {
	Title  *string
	Image  *string
	Year   *int
	Genre  *primitive.ObjectID
	Detail *string
	Cast   *[]string
}

// ==================== CRUD ====================

// Create valida todo, normaliza y persiste la película con los
// contadores derivados en cero. Nada se escribe si la validación falla.
func (s *MovieService) Create(ctx context.Context, data CreateMovieData) (*models.MovieDoc, error) {
	title := strings.TrimSpace(data.Title)
	detail := strings.TrimSpace(data.Detail)

	if title == "" || data.Year == 0 || data.Genre.IsZero() || detail == "" {
		return nil, fmt.Errorf("%w: title, year, genre, and detail are required fields", ErrBadInput)
	}
	if err := validateMovieFields(title, detail, data.Year, data.Cast); err != nil {
		return nil, err
	}

	genre, err := s.genres.FindByID(ctx, data.Genre)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre does not exist", ErrValidation)
	}

	title = models.NormalizeTitle(title)

	existing, err := s.movies.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a movie with this title already exists", ErrDuplicate)
	}

	image := strings.TrimSpace(data.Image)
	if image == "" {
		image = models.DefaultImage
	}

	now := time.Now().UTC()
	m := &models.MovieDoc{
		Title:      title,
		Image:      image,
		Year:       data.Year,
		Genre:      data.Genre,
		Detail:     detail,
		Cast:       models.TrimCast(data.Cast),
		Reviews:    []models.ReviewDoc{},
		NumReviews: 0,
		Rating:     0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cacheKeyNew, cacheKeyTop)
	return m, nil
}

func (s *MovieService) Get(ctx context.Context, id primitive.ObjectID) (*models.MovieDoc, error) {
	m, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movie does not exist", ErrNotFound)
	}
	return m, nil
}

// Update aplica cambios parciales. Las reviews no se tocan por acá.
func (s *MovieService) Update(ctx context.Context, id primitive.ObjectID, data UpdateMovieData) (*models.MovieDoc, error) {
	m, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movie not found", ErrNotFound)
	}

	update := bson.M{}

	if data.Title != nil {
		title := strings.TrimSpace(*data.Title)
		if title == "" || len(title) > models.TitleMaxLen {
			return nil, fmt.Errorf("%w: movie title must be non-empty and at most %d characters", ErrValidation, models.TitleMaxLen)
		}
		title = models.NormalizeTitle(title)

		existing, err := s.movies.FindByTitle(ctx, title)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: a movie with this title already exists", ErrDuplicate)
		}
		update["title"] = title
	}

	if data.Year != nil {
		if *data.Year < models.MinYear || *data.Year > time.Now().Year() {
			return nil, fmt.Errorf("%w: year must be between %d and the current year", ErrValidation, models.MinYear)
		}
		update["year"] = *data.Year
	}

	if data.Genre != nil {
		genre, err := s.genres.FindByID(ctx, *data.Genre)
		if err != nil {
			return nil, err
		}
		if genre == nil {
			return nil, fmt.Errorf("%w: genre does not exist", ErrValidation)
		}
		update["genre"] = *data.Genre
	}

	if data.Detail != nil {
		detail := strings.TrimSpace(*data.Detail)
		if detail == "" || len(detail) > models.DetailMaxLen {
			return nil, fmt.Errorf("%w: details must be non-empty and at most %d characters", ErrValidation, models.DetailMaxLen)
		}
		update["detail"] = detail
	}

	if data.Cast != nil {
		cast := models.TrimCast(*data.Cast)
		for _, c := range cast {
			if len(c) > models.CastNameMaxLen {
				return nil, fmt.Errorf("%w: cast member names must not exceed %d characters", ErrValidation, models.CastNameMaxLen)
			}
		}
		update["cast"] = cast
	}

	if data.Image != nil && strings.TrimSpace(*data.Image) != "" {
		update["image"] = strings.TrimSpace(*data.Image)
	}

	if len(update) == 0 {
		return m, nil
	}
	update["updatedAt"] = time.Now().UTC()

	if err := s.movies.UpdateByID(ctx, id, update); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cacheKeyNew, cacheKeyTop)
	return s.movies.FindByID(ctx, id)
}

// Delete borra el agregado completo; las reviews van embebidas así que
// no queda nada colgado.
func (s *MovieService) Delete(ctx context.Context, id primitive.ObjectID) (*models.MovieDoc, error) {
	m, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movie not found", ErrNotFound)
	}
	if _, err := s.movies.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cacheKeyNew, cacheKeyTop)
	return m, nil
}

// ==================== listado / curados ====================

func (s *MovieService) List(ctx context.Context, p repository.ListParams) ([]models.MovieDoc, int64, error) {
	return s.movies.List(ctx, p)
}

func (s *MovieService) Newest(ctx context.Context) ([]models.MovieDoc, error) {
	var cached []models.MovieDoc
	if hit, err := cache.GetJSON(ctx, cacheKeyNew, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := s.movies.Newest(ctx, curatedListSize)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, cacheKeyNew, out, cacheTTLSec)
	return out, nil
}

func (s *MovieService) Top(ctx context.Context) ([]models.MovieDoc, error) {
	var cached []models.MovieDoc
	if hit, err := cache.GetJSON(ctx, cacheKeyTop, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := s.movies.Top(ctx, curatedListSize)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, cacheKeyTop, out, cacheTTLSec)
	return out, nil
}

// Random no se cachea, perdería la gracia.
func (s *MovieService) Random(ctx context.Context) ([]models.MovieDoc, error) {
	return s.movies.Random(ctx, curatedListSize)
}

// ==================== reviews ====================

// AddReview agrega la review con un push condicionado ($ne sobre
// reviews.user): chequeo e inserción son un solo write atómico, así
// que dos requests simultáneos del mismo usuario no duplican.
// Después se recalculan numReviews/rating releyendo la lista.
func (s *MovieService) AddReview(ctx context.Context, movieID primitive.ObjectID, user *models.UserDoc, rating int, comment string) (*models.MovieDoc, error) {
	comment = strings.TrimSpace(comment)
	if rating < models.RatingMin || rating > models.RatingMax || comment == "" {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5, and the comment cannot be empty", ErrBadInput)
	}
	if len(comment) > models.CommentMaxLen {
		return nil, fmt.Errorf("%w: comment must not exceed %d characters", ErrValidation, models.CommentMaxLen)
	}

	rv := models.ReviewDoc{
		ID:        primitive.NewObjectID(),
		User:      user.ID,
		UserName:  user.Username,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	pushed, err := s.movies.PushReviewIfAbsent(ctx, movieID, rv)
	if err != nil {
		return nil, err
	}
	if !pushed {
		// distinguimos película inexistente de review repetida
		m, err := s.movies.FindByID(ctx, movieID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: movie not found", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: you have already reviewed this movie", ErrDuplicate)
	}

	return s.refreshStats(ctx, movieID)
}

// DeleteReview saca una review por id y recalcula los derivados.
func (s *MovieService) DeleteReview(ctx context.Context, movieID, reviewID primitive.ObjectID) (*models.MovieDoc, error) {
	pulled, err := s.movies.PullReview(ctx, movieID, reviewID)
	if err != nil {
		return nil, err
	}
	if !pulled {
		m, err := s.movies.FindByID(ctx, movieID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: movie not found", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: comment not found", ErrNotFound)
	}

	return s.refreshStats(ctx, movieID)
}

// refreshStats relee el documento, recalcula los campos derivados con
// la función pura del modelo y los persiste. Idempotente a propósito.
func (s *MovieService) refreshStats(ctx context.Context, movieID primitive.ObjectID) (*models.MovieDoc, error) {
	m, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movie not found", ErrNotFound)
	}

	m.RecomputeStats()
	if err := s.movies.SetStats(ctx, movieID, m.NumReviews, m.Rating); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cacheKeyTop)
	return m, nil
}

func validateMovieFields(title, detail string, year int, cast []string) error {
	if len(title) > models.TitleMaxLen {
		return fmt.Errorf("%w: movie title must not exceed %d characters", ErrValidation, models.TitleMaxLen)
	}
	if len(detail) > models.DetailMaxLen {
		return fmt.Errorf("%w: details must not exceed %d characters", ErrValidation, models.DetailMaxLen)
	}
	if year < models.MinYear || year > time.Now().Year() {
		return fmt.Errorf("%w: year must be between %d and the current year", ErrValidation, models.MinYear)
	}
	for _, c := range cast {
		if len(strings.TrimSpace(c)) > models.CastNameMaxLen {
			return fmt.Errorf("%w: cast member names must not exceed %d characters", ErrValidation, models.CastNameMaxLen)
		}
	}
	return nil
}
