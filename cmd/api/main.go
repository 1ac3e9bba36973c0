package main

import (
	"log"
	"net/http"

	_ "github.com/krotrn/MERN-Project/docs" // swagger docs

	"github.com/krotrn/MERN-Project/internal/cache"
	"github.com/krotrn/MERN-Project/internal/config"
	"github.com/krotrn/MERN-Project/internal/db"
	"github.com/krotrn/MERN-Project/internal/handler"
	"github.com/krotrn/MERN-Project/internal/repository"
	"github.com/krotrn/MERN-Project/internal/service"
)

// @title Movie Catalog API
// @version 1.0
// @description API REST del catálogo de películas (auth por cookie, géneros, reviews, uploads)
// @host localhost:3000
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	genreRepo := repository.NewGenreRepository()
	movieRepo := repository.NewMovieRepository()

	// services
	authSvc := service.NewAuthService(userRepo)
	genreSvc := service.NewGenreService(genreRepo, movieRepo)
	movieSvc := service.NewMovieService(movieRepo, genreRepo)

	// handlers
	uploadH, err := handler.NewUploadHandler(cfg.UploadDir)
	if err != nil {
		log.Fatalf("[uploads] no se pudo crear el directorio: %v", err)
	}

	router := handler.NewRouter(handler.Deps{
		Cfg:    cfg,
		Users:  userRepo,
		Auth:   handler.NewAuthHandler(authSvc, cfg),
		Genres: handler.NewGenreHandler(genreSvc),
		Movies: handler.NewMovieHandler(movieSvc),
		Upload: uploadH,
	})

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, router))
}
