package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/krotrn/MERN-Project/internal/repository"
	"github.com/krotrn/MERN-Project/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

// listResponse es el envelope paginado del listado.
type listResponse struct {
	Status      string `json:"status"`
	Results     int    `json:"results"`
	TotalMovies int64  `json:"totalMovies"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	Data        any    `json:"data"`
}

// @Summary Listar películas (paginado)
// @Tags movies
// @Produce json
// @Param page query int false "página (default: 1)"
// @Param limit query int false "tamaño de página (default: 10)"
// @Param sort query string false "createdAt|title|year|numReviews|rating"
// @Param order query string false "asc|desc (default: desc)"
// @Param year query int false "filtrar por año exacto"
// @Param genre query string false "filtrar por id de género"
// @Success 200 {object} listResponse
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p := repository.ListParams{
		Sort:  q.Get("sort"),
		Order: q.Get("order"),
	}
	p.Page, _ = strconv.Atoi(q.Get("page"))
	p.Limit, _ = strconv.Atoi(q.Get("limit"))
	p.Year, _ = strconv.Atoi(q.Get("year"))

	if g := q.Get("genre"); g != "" {
		gid, err := primitive.ObjectIDFromHex(g)
		if err != nil {
			respondFail(w, http.StatusBadRequest, "Invalid genre id.")
			return
		}
		p.Genre = &gid
	}

	movies, total, err := h.svc.List(r.Context(), p)
	if err != nil {
		respondError(w, err)
		return
	}

	p = p.Normalized()
	writeJSON(w, http.StatusOK, listResponse{
		Status:      "success",
		Results:     len(movies),
		TotalMovies: total,
		CurrentPage: p.Page,
		TotalPages:  repository.TotalPages(total, p.Limit),
		Data:        movies,
	})
}

// @Summary Obtener película con sus reviews
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {object} envelope
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, m, "")
}

type createMovieRequest struct {
	Title  string   `json:"title" validate:"required"`
	Image  string   `json:"image"`
	Year   int      `json:"year" validate:"required"`
	Genre  string   `json:"genre" validate:"required"`
	Detail string   `json:"detail" validate:"required"`
	Cast   []string `json:"cast"`
}

// @Summary Crear película (ADMIN)
// @Tags movies
// @Accept json
// @Produce json
// @Param body body createMovieRequest true "datos"
// @Success 201 {object} models.MovieDoc
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /movies/create-movie [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkStruct(req); err != nil {
		respondFail(w, http.StatusBadRequest, "Title, Year, Genre, and Detail are required fields.")
		return
	}

	genreID, err := primitive.ObjectIDFromHex(req.Genre)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid genre id.")
		return
	}

	m, err := h.svc.Create(r.Context(), service.CreateMovieData{
		Title:  req.Title,
		Image:  req.Image,
		Year:   req.Year,
		Genre:  genreID,
		Detail: req.Detail,
		Cast:   req.Cast,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, m, "Movie created successfully!")
}

type updateMovieRequest struct {
	Title  *string   `json:"title"`
	Image  *string   `json:"image"`
	Year   *int      `json:"year"`
	Genre  *string   `json:"genre"`
	Detail *string   `json:"detail"`
	Cast   *[]string `json:"cast"`
}

// @Summary Actualizar película (ADMIN)
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body updateMovieRequest true "campos a actualizar"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {object} envelope
// @Router /movies/update-movie/{id} [put]
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}

	var req updateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data := service.UpdateMovieData{
		Title:  req.Title,
		Image:  req.Image,
		Year:   req.Year,
		Detail: req.Detail,
		Cast:   req.Cast,
	}
	if req.Genre != nil {
		gid, err := primitive.ObjectIDFromHex(*req.Genre)
		if err != nil {
			respondFail(w, http.StatusBadRequest, "Invalid genre id.")
			return
		}
		data.Genre = &gid
	}

	m, err := h.svc.Update(r.Context(), id, data)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, m, "")
}

// @Summary Borrar película (ADMIN)
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {object} envelope
// @Router /movies/delete-movie/{id} [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, m, "Movie deleted successfully")
}

// ==================== reviews ====================

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// @Summary Agregar review (requiere sesión)
// @Description Una sola review por usuario y película
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body reviewRequest true "review"
// @Success 201 {object} models.MovieDoc
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /movies/{id}/reviews [post]
func (h *MovieHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}
	u := UserFromContext(r.Context())

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkStruct(req); err != nil {
		respondFail(w, http.StatusBadRequest, "Rating must be between 1 and 5, and the comment cannot be empty.")
		return
	}

	m, err := h.svc.AddReview(r.Context(), id, u, req.Rating, req.Comment)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, m, "Review added successfully!")
}

type deleteCommentRequest struct {
	CommentID string `json:"commentId" validate:"required"`
}

// @Summary Borrar review (ADMIN)
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body deleteCommentRequest true "id de la review"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {object} envelope
// @Router /movies/delete-comment/{id} [delete]
func (h *MovieHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}

	var req deleteCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reviewID, err := primitive.ObjectIDFromHex(req.CommentID)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid ObjectId: '"+req.CommentID+"'")
		return
	}

	m, err := h.svc.DeleteReview(r.Context(), id, reviewID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, m, "Comment deleted successfully")
}

// ==================== listas curadas ====================

// @Summary Últimas agregadas
// @Tags movies
// @Produce json
// @Success 200 {array} models.MovieDoc
// @Router /movies/new-movies [get]
func (h *MovieHandler) NewMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.Newest(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movies, "")
}

// @Summary Más reviewadas
// @Tags movies
// @Produce json
// @Success 200 {array} models.MovieDoc
// @Router /movies/top-movies [get]
func (h *MovieHandler) TopMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.Top(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movies, "")
}

// @Summary Muestra aleatoria
// @Tags movies
// @Produce json
// @Success 200 {array} models.MovieDoc
// @Router /movies/random-movies [get]
func (h *MovieHandler) RandomMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.Random(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, movies, "")
}
