package service

import (
	"context"
	"strings"

	"github.com/krotrn/MERN-Project/internal/models"
	"github.com/krotrn/MERN-Project/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stores en memoria para testear los servicios sin Mongo

type fakeUserStore struct {
	users []*models.UserDoc
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.UserDoc, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.UserDoc) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserStore) UpdateByID(_ context.Context, id primitive.ObjectID, update bson.M) error {
	for _, u := range f.users {
		if u.ID != id {
			continue
		}
		if v, ok := update["username"].(string); ok {
			u.Username = v
		}
		if v, ok := update["email"].(string); ok {
			u.Email = v
		}
		if v, ok := update["password"].(string); ok {
			u.Password = v
		}
		return nil
	}
	return nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.UserDoc, error) {
	out := make([]models.UserDoc, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeGenreStore struct {
	genres []*models.GenreDoc
}

func (f *fakeGenreStore) FindByName(_ context.Context, name string) (*models.GenreDoc, error) {
	for _, g := range f.genres {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGenreStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.GenreDoc, error) {
	for _, g := range f.genres {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGenreStore) FindAll(_ context.Context) ([]models.GenreDoc, error) {
	out := make([]models.GenreDoc, 0, len(f.genres))
	for _, g := range f.genres {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGenreStore) Insert(_ context.Context, g *models.GenreDoc) error {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	f.genres = append(f.genres, g)
	return nil
}

func (f *fakeGenreStore) UpdateByID(_ context.Context, id primitive.ObjectID, update bson.M) error {
	for _, g := range f.genres {
		if g.ID != id {
			continue
		}
		if v, ok := update["name"].(string); ok {
			g.Name = v
		}
		if v, ok := update["description"].(string); ok {
			g.Description = v
		}
		return nil
	}
	return nil
}

func (f *fakeGenreStore) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, g := range f.genres {
		if g.ID == id {
			f.genres = append(f.genres[:i], f.genres[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeMovieStore struct {
	movies []*models.MovieDoc
}

func (f *fakeMovieStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.MovieDoc, error) {
	for _, m := range f.movies {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieStore) FindByTitle(_ context.Context, title string) (*models.MovieDoc, error) {
	for _, m := range f.movies {
		if strings.EqualFold(m.Title, title) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieStore) Insert(_ context.Context, m *models.MovieDoc) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	cp := *m
	f.movies = append(f.movies, &cp)
	return nil
}

func (f *fakeMovieStore) UpdateByID(_ context.Context, id primitive.ObjectID, update bson.M) error {
	for _, m := range f.movies {
		if m.ID != id {
			continue
		}
		if v, ok := update["title"].(string); ok {
			m.Title = v
		}
		if v, ok := update["detail"].(string); ok {
			m.Detail = v
		}
		if v, ok := update["year"].(int); ok {
			m.Year = v
		}
		if v, ok := update["genre"].(primitive.ObjectID); ok {
			m.Genre = v
		}
		if v, ok := update["cast"].([]string); ok {
			m.Cast = v
		}
		if v, ok := update["image"].(string); ok {
			m.Image = v
		}
		return nil
	}
	return nil
}

func (f *fakeMovieStore) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, m := range f.movies {
		if m.ID == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMovieStore) CountByGenre(_ context.Context, genreID primitive.ObjectID) (int64, error) {
	var n int64
	for _, m := range f.movies {
		if m.Genre == genreID {
			n++
		}
	}
	return n, nil
}

func (f *fakeMovieStore) List(_ context.Context, p repository.ListParams) ([]models.MovieDoc, int64, error) {
	out := make([]models.MovieDoc, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMovieStore) Newest(_ context.Context, limit int) ([]models.MovieDoc, error) {
	return f.firstN(limit), nil
}

func (f *fakeMovieStore) Top(_ context.Context, limit int) ([]models.MovieDoc, error) {
	return f.firstN(limit), nil
}

func (f *fakeMovieStore) Random(_ context.Context, size int) ([]models.MovieDoc, error) {
	return f.firstN(size), nil
}

func (f *fakeMovieStore) firstN(n int) []models.MovieDoc {
	out := make([]models.MovieDoc, 0, n)
	for _, m := range f.movies {
		if len(out) == n {
			break
		}
		out = append(out, *m)
	}
	return out
}

// PushReviewIfAbsent replica la semántica del update condicionado:
// no inserta si la película no existe o si el usuario ya reviewó.
func (f *fakeMovieStore) PushReviewIfAbsent(_ context.Context, movieID primitive.ObjectID, rv models.ReviewDoc) (bool, error) {
	for _, m := range f.movies {
		if m.ID != movieID {
			continue
		}
		if m.HasReviewBy(rv.User) {
			return false, nil
		}
		m.Reviews = append(m.Reviews, rv)
		return true, nil
	}
	return false, nil
}

func (f *fakeMovieStore) PullReview(_ context.Context, movieID, reviewID primitive.ObjectID) (bool, error) {
	for _, m := range f.movies {
		if m.ID != movieID {
			continue
		}
		for i, rv := range m.Reviews {
			if rv.ID == reviewID {
				m.Reviews = append(m.Reviews[:i], m.Reviews[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}

func (f *fakeMovieStore) SetStats(_ context.Context, movieID primitive.ObjectID, numReviews int, rating float64) error {
	for _, m := range f.movies {
		if m.ID == movieID {
			m.NumReviews = numReviews
			m.Rating = rating
		}
	}
	return nil
}
