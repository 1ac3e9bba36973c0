package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/krotrn/MERN-Project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMovieFixture(t *testing.T) (*MovieService, *fakeMovieStore, *models.GenreDoc) {
	t.Helper()
	genres := &fakeGenreStore{}
	movies := &fakeMovieStore{}

	g := &models.GenreDoc{Name: "Action"}
	require.NoError(t, genres.Insert(context.Background(), g))

	return NewMovieService(movies, genres), movies, g
}

func testUser(name string) *models.UserDoc {
	return &models.UserDoc{ID: primitive.NewObjectID(), Username: name}
}

func TestMovieCreate(t *testing.T) {
	svc, _, g := newMovieFixture(t)

	m, err := svc.Create(context.Background(), CreateMovieData{
		Title:  "  the dark knight ",
		Year:   2008,
		Genre:  g.ID,
		Detail: " una de batman ",
		Cast:   []string{" Christian Bale ", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "The Dark Knight", m.Title, "el título se normaliza a Title Case")
	assert.Equal(t, "una de batman", m.Detail)
	assert.Equal(t, []string{"Christian Bale"}, m.Cast)
	assert.Equal(t, models.DefaultImage, m.Image, "sin imagen va el placeholder")
	assert.Zero(t, m.NumReviews)
	assert.Zero(t, m.Rating)
}

func TestMovieCreateValidation(t *testing.T) {
	svc, _, g := newMovieFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		data    CreateMovieData
		wantErr error
	}{
		{"sin título", CreateMovieData{Year: 2000, Genre: g.ID, Detail: "x"}, ErrBadInput},
		{"sin detail", CreateMovieData{Title: "X", Year: 2000, Genre: g.ID}, ErrBadInput},
		{"año muy viejo", CreateMovieData{Title: "X", Year: 1899, Genre: g.ID, Detail: "x"}, ErrValidation},
		{"año futuro", CreateMovieData{Title: "X", Year: time.Now().Year() + 1, Genre: g.ID, Detail: "x"}, ErrValidation},
		{"género inexistente", CreateMovieData{Title: "X", Year: 2000, Genre: primitive.NewObjectID(), Detail: "x"}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMovieCreateDuplicateTitle(t *testing.T) {
	svc, _, g := newMovieFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateMovieData{Title: "Heat", Year: 1995, Genre: g.ID, Detail: "x"})
	require.NoError(t, err)

	// mismo título con otro case también es duplicado
	_, err = svc.Create(ctx, CreateMovieData{Title: "HEAT", Year: 1995, Genre: g.ID, Detail: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAddReview(t *testing.T) {
	svc, store, g := newMovieFixture(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMovieData{Title: "Heat", Year: 1995, Genre: g.ID, Detail: "x"})
	require.NoError(t, err)

	alice := testUser("alice")
	bob := testUser("bob")

	t.Run("rating fuera de rango", func(t *testing.T) {
		_, err := svc.AddReview(ctx, m.ID, alice, 6, "buenísima")
		assert.ErrorIs(t, err, ErrBadInput)
	})

	t.Run("comentario vacío", func(t *testing.T) {
		_, err := svc.AddReview(ctx, m.ID, alice, 4, "   ")
		assert.ErrorIs(t, err, ErrBadInput)
	})

	t.Run("película inexistente", func(t *testing.T) {
		_, err := svc.AddReview(ctx, primitive.NewObjectID(), alice, 4, "buenísima")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("primera review actualiza derivados", func(t *testing.T) {
		updated, err := svc.AddReview(ctx, m.ID, alice, 4, "buenísima")
		require.NoError(t, err)
		assert.Equal(t, 1, updated.NumReviews)
		assert.Equal(t, float64(4), updated.Rating)
		assert.Equal(t, len(updated.Reviews), updated.NumReviews)
	})

	t.Run("segunda review del mismo usuario rechazada", func(t *testing.T) {
		_, err := svc.AddReview(ctx, m.ID, alice, 5, "cambié de idea")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("otro usuario sí puede y el promedio se recalcula", func(t *testing.T) {
		updated, err := svc.AddReview(ctx, m.ID, bob, 5, "de diez")
		require.NoError(t, err)
		assert.Equal(t, 2, updated.NumReviews)
		assert.InDelta(t, 4.5, updated.Rating, 1e-9)
	})

	// el derivado persiste en el store, no solo en el valor devuelto
	stored, _ := store.FindByID(ctx, m.ID)
	assert.Equal(t, 2, stored.NumReviews)
	assert.InDelta(t, 4.5, stored.Rating, 1e-9)
}

func TestDeleteReview(t *testing.T) {
	svc, store, g := newMovieFixture(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMovieData{Title: "Heat", Year: 1995, Genre: g.ID, Detail: "x"})
	require.NoError(t, err)

	_, err = svc.AddReview(ctx, m.ID, testUser("alice"), 5, "tremenda")
	require.NoError(t, err)
	updated, err := svc.AddReview(ctx, m.ID, testUser("bob"), 1, "no me gustó")
	require.NoError(t, err)
	require.Equal(t, 2, updated.NumReviews)

	t.Run("review inexistente", func(t *testing.T) {
		_, err := svc.DeleteReview(ctx, m.ID, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("película inexistente", func(t *testing.T) {
		_, err := svc.DeleteReview(ctx, primitive.NewObjectID(), updated.Reviews[0].ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("borrar recalcula derivados", func(t *testing.T) {
		after, err := svc.DeleteReview(ctx, m.ID, updated.Reviews[1].ID)
		require.NoError(t, err)
		assert.Equal(t, 1, after.NumReviews)
		assert.Equal(t, float64(5), after.Rating)
	})

	t.Run("sin reviews el rating vuelve a cero exacto", func(t *testing.T) {
		stored, _ := store.FindByID(ctx, m.ID)
		after, err := svc.DeleteReview(ctx, m.ID, stored.Reviews[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 0, after.NumReviews)
		assert.True(t, after.Rating == 0 && !math.Signbit(after.Rating))
	})
}

func TestMovieUpdate(t *testing.T) {
	svc, _, g := newMovieFixture(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMovieData{Title: "Heat", Year: 1995, Genre: g.ID, Detail: "x"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateMovieData{Title: "Alien", Year: 1979, Genre: g.ID, Detail: "x"})
	require.NoError(t, err)

	t.Run("no encontrada", func(t *testing.T) {
		title := "Otra"
		_, err := svc.Update(ctx, primitive.NewObjectID(), UpdateMovieData{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("título se re-normaliza", func(t *testing.T) {
		title := "heat 2"
		updated, err := svc.Update(ctx, m.ID, UpdateMovieData{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Heat 2", updated.Title)
	})

	t.Run("chocar con título de otra película", func(t *testing.T) {
		title := "alien"
		_, err := svc.Update(ctx, m.ID, UpdateMovieData{Title: &title})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("año inválido", func(t *testing.T) {
		year := 1800
		_, err := svc.Update(ctx, m.ID, UpdateMovieData{Year: &year})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestMovieDelete(t *testing.T) {
	svc, store, g := newMovieFixture(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMovieData{Title: "Heat", Year: 1995, Genre: g.ID, Detail: "x"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, deleted.ID)
	assert.Empty(t, store.movies)

	_, err = svc.Delete(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
