package db

import (
	"context"
	"log"
	"time"

	"github.com/krotrn/MERN-Project/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)

	ensureIndexes(ctx)
}

// ensureIndexes crea los índices de unicidad que respaldan las
// validaciones de la capa de servicio (email, título, nombre de género).
func ensureIndexes(ctx context.Context) {
	caseInsensitive := options.Collation{Locale: "en", Strength: 2}

	_, err := mongoDB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("[mongo] índice users.email: %v", err)
	}

	_, err = mongoDB.Collection("genres").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetCollation(&caseInsensitive),
	})
	if err != nil {
		log.Fatalf("[mongo] índice genres.name: %v", err)
	}

	// título único sin importar mayúsculas/minúsculas
	_, err = mongoDB.Collection("movies").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true).SetCollation(&caseInsensitive),
	})
	if err != nil {
		log.Fatalf("[mongo] índice movies.title: %v", err)
	}

	log.Println("[mongo] índices OK")
}

func DB() *mongo.Database {
	return mongoDB
}

func Disconnect(ctx context.Context) error {
	if mongoClient == nil {
		return nil
	}
	return mongoClient.Disconnect(ctx)
}
