package repository

import (
	"context"
	"time"

	"github.com/krotrn/MERN-Project/internal/db"
	"github.com/krotrn/MERN-Project/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

func (r *MovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MovieDoc, error) {
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

// FindByTitle busca por título exacto sin distinguir mayúsculas
// (respaldado por el índice único con collation).
func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*models.MovieDoc, error) {
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"title": title}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MovieRepository) Insert(ctx context.Context, m *models.MovieDoc) error {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = oid
	}
	return nil
}

// UpdateByID aplica un $set parcial.
func (r *MovieRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// CountByGenre cuenta películas que referencian un género. Se usa para
// bloquear el borrado de géneros en uso.
func (r *MovieRepository) CountByGenre(ctx context.Context, genreID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"genre": genreID})
}

// List pagina/filtra/ordena el catálogo y devuelve también el total
// para que el handler arme totalPages.
func (r *MovieRepository) List(ctx context.Context, p ListParams) ([]models.MovieDoc, int64, error) {
	p = p.Normalized()

	filter := bson.M{}
	if p.Year != 0 {
		filter["year"] = p.Year
	}
	if p.Genre != nil {
		filter["genre"] = *p.Genre
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: p.Sort, Value: p.SortValue()}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := make([]models.MovieDoc, 0, p.Limit)
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, cur.Err()
}

// Newest devuelve las últimas agregadas al catálogo.
func (r *MovieRepository) Newest(ctx context.Context, limit int) ([]models.MovieDoc, error) {
	return r.findSorted(ctx, bson.D{{Key: "createdAt", Value: -1}}, limit)
}

// Top ordena por cantidad de reviews.
func (r *MovieRepository) Top(ctx context.Context, limit int) ([]models.MovieDoc, error) {
	return r.findSorted(ctx, bson.D{{Key: "numReviews", Value: -1}}, limit)
}

// Random usa $sample para traer una muestra aleatoria.
func (r *MovieRepository) Random(ctx context.Context, size int) ([]models.MovieDoc, error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": size}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *MovieRepository) findSorted(ctx context.Context, sort bson.D, limit int) ([]models.MovieDoc, error) {
	opts := options.Find().SetSort(sort).SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// ==================== reviews embebidas ====================

// PushReviewIfAbsent agrega la review solo si el usuario todavía no
// reviewó la película. El filtro con $ne hace que chequeo e inserción
// sean un único write atómico del documento, así dos requests
// concurrentes del mismo usuario no pueden colar dos reviews.
func (r *MovieRepository) PushReviewIfAbsent(ctx context.Context, movieID primitive.ObjectID, rv models.ReviewDoc) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": movieID, "reviews.user": bson.M{"$ne": rv.User}},
		bson.M{
			"$push": bson.M{"reviews": rv},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// PullReview saca una review por id. El update lleva solo el $pull:
// si metiéramos un $set acá ModifiedCount daría positivo aunque la
// review no exista.
func (r *MovieRepository) PullReview(ctx context.Context, movieID, reviewID primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": movieID},
		bson.M{"$pull": bson.M{"reviews": bson.M{"_id": reviewID}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// SetStats persiste los campos derivados ya recalculados. Es un
// recálculo idempotente: dos writers concurrentes convergen al mismo
// valor porque ambos releen la lista completa.
func (r *MovieRepository) SetStats(ctx context.Context, movieID primitive.ObjectID, numReviews int, rating float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": movieID},
		bson.M{"$set": bson.M{
			"numReviews": numReviews,
			"rating":     rating,
			"updatedAt":  time.Now().UTC(),
		}},
	)
	return err
}
