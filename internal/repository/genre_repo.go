package repository

import (
	"context"

	"github.com/krotrn/MERN-Project/internal/db"
	"github.com/krotrn/MERN-Project/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GenreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{col: db.DB().Collection("genres")}
}

// FindByName busca por nombre sin distinguir mayúsculas (misma collation
// que el índice único).
func (r *GenreRepository) FindByName(ctx context.Context, name string) (*models.GenreDoc, error) {
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	var g models.GenreDoc
	err := r.col.FindOne(ctx, bson.M{"name": name}, opts).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &g, err
}

func (r *GenreRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GenreDoc, error) {
	var g models.GenreDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &g, err
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]models.GenreDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GenreDoc
	for cur.Next(ctx) {
		var g models.GenreDoc
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

func (r *GenreRepository) Insert(ctx context.Context, g *models.GenreDoc) error {
	res, err := r.col.InsertOne(ctx, g)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		g.ID = oid
	}
	return nil
}

func (r *GenreRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
