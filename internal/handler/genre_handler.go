package handler

import (
	"encoding/json"
	"net/http"

	"github.com/krotrn/MERN-Project/internal/service"
)

type GenreHandler struct {
	svc *service.GenreService
}

func NewGenreHandler(s *service.GenreService) *GenreHandler { return &GenreHandler{svc: s} }

type genreRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// @Summary Crear género (ADMIN)
// @Tags genres
// @Accept json
// @Produce json
// @Param body body genreRequest true "datos"
// @Success 201 {object} models.GenreDoc
// @Failure 409 {object} envelope
// @Router /genres [post]
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkStruct(req); err != nil {
		respondFail(w, http.StatusBadRequest, "Missing required field: name.")
		return
	}

	g, err := h.svc.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, g, "Genre created successfully.")
}

// @Summary Listar géneros
// @Tags genres
// @Produce json
// @Success 200 {array} models.GenreDoc
// @Router /genres [get]
func (h *GenreHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, genres, "")
}

// @Summary Obtener género por id
// @Tags genres
// @Produce json
// @Param id path string true "genreId"
// @Success 200 {object} models.GenreDoc
// @Failure 404 {object} envelope
// @Router /genres/{id} [get]
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}
	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, g, "")
}

// @Summary Actualizar género (ADMIN)
// @Tags genres
// @Accept json
// @Produce json
// @Param id path string true "genreId"
// @Param body body genreRequest true "datos"
// @Success 200 {object} models.GenreDoc
// @Failure 404 {object} envelope
// @Router /genres/{id} [put]
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}

	var req genreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.svc.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, g, "")
}

// @Summary Borrar género (ADMIN)
// @Description Falla con 409 si todavía hay películas que lo referencian
// @Tags genres
// @Produce json
// @Param id path string true "genreId"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Failure 409 {object} envelope
// @Router /genres/{id} [delete]
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseObjectID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Genre deleted successfully.")
}
