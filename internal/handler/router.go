package handler

import (
	"net/http"

	"github.com/krotrn/MERN-Project/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Deps junta todo lo que el router necesita; main arma esto a mano,
// acá no hay registro global de nada.
type Deps struct {
	Cfg    *config.Config
	Users  UserLoader
	Auth   *AuthHandler
	Genres *GenreHandler
	Movies *MovieHandler
	Upload *UploadHandler
}

// NewRouter construye el árbol de rutas completo bajo /api/v1.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	authMw := Authenticate(d.Cfg.JWTSecret, d.Users)
	adminMw := AdminOnly()

	r.Get("/health", Health)

	r.Route("/api/v1", func(r chi.Router) {
		// =============
		// Usuarios
		// =============
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", d.Auth.Register)
			r.With(authMw, adminMw).Get("/register", d.Auth.ListUsers)
			r.With(LoginRateLimit()).Post("/login", d.Auth.Login)
			r.Post("/logout", d.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(authMw)
				r.Get("/profile", d.Auth.GetProfile)
				r.Put("/profile", d.Auth.UpdateProfile)
			})
		})

		// =============
		// Géneros
		// =============
		r.Route("/genres", func(r chi.Router) {
			r.With(authMw).Get("/", d.Genres.GetAll)
			r.With(authMw, adminMw).Post("/", d.Genres.Create)

			r.Get("/{id}", d.Genres.Get)
			r.With(authMw, adminMw).Put("/{id}", d.Genres.Update)
			r.With(authMw, adminMw).Delete("/{id}", d.Genres.Delete)
		})

		// =============
		// Películas
		// =============
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", d.Movies.List)
			// las rutas fijas van antes que /{id}
			r.Get("/new-movies", d.Movies.NewMovies)
			r.Get("/top-movies", d.Movies.TopMovies)
			r.Get("/random-movies", d.Movies.RandomMovies)
			r.Get("/{id}", d.Movies.Get)

			r.With(authMw).Post("/{id}/reviews", d.Movies.AddReview)

			r.Group(func(r chi.Router) {
				r.Use(authMw, adminMw)
				r.Post("/create-movie", d.Movies.Create)
				r.Put("/update-movie/{id}", d.Movies.Update)
				r.Delete("/delete-movie/{id}", d.Movies.Delete)
				r.Delete("/delete-comment/{id}", d.Movies.DeleteComment)
			})
		})

		// =============
		// Uploads
		// =============
		r.Route("/uploads", func(r chi.Router) {
			r.Use(authMw, adminMw)
			r.Post("/", d.Upload.Upload)
			r.Delete("/{filename}", d.Upload.Delete)
		})
	})

	// servir los archivos subidos
	r.Handle("/uploads/*", d.Upload.ServeStatic())

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// fallback JSON para endpoints desconocidos
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondFail(w, http.StatusNotFound, "API endpoint not found")
	})

	return r
}
