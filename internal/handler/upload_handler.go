package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5MB

// tipos de imagen aceptados (extensión -> content types válidos)
var allowedImageExts = map[string][]string{
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
	".webp": {"image/webp"},
}

type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) (*UploadHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadHandler{dir: dir}, nil
}

// @Summary Subir imagen (ADMIN)
// @Description Acepta jpg/jpeg/png/webp hasta 5MB en el campo `image`
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "imagen"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Router /uploads [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondFail(w, http.StatusBadRequest, "File size exceeds the 5MB limit.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondFail(w, http.StatusBadRequest, "No image uploaded. Please provide a valid image.")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mimes, ok := allowedImageExts[ext]
	if !ok {
		respondFail(w, http.StatusBadRequest, "Only JPEG, PNG, and WebP images are allowed.")
		return
	}

	contentType := header.Header.Get("Content-Type")
	validMime := false
	for _, m := range mimes {
		if contentType == m {
			validMime = true
			break
		}
	}
	if !validMime {
		respondFail(w, http.StatusBadRequest, "Only JPEG, PNG, and WebP images are allowed.")
		return
	}

	name := "image-" + uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		respondError(w, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"message":   "Image uploaded successfully.",
		"imagePath": "/uploads/" + name,
	})
}

// @Summary Borrar imagen subida (ADMIN)
// @Tags uploads
// @Produce json
// @Param filename path string true "nombre de archivo"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /uploads/{filename} [delete]
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	// nada de ../ ni paths con separadores
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		respondFail(w, http.StatusBadRequest, "Invalid file name.")
		return
	}

	err := os.Remove(filepath.Join(h.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		respondFail(w, http.StatusNotFound, "File not found.")
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, nil, "Image deleted successfully.")
}

// ServeStatic expone el directorio de uploads como archivos estáticos.
func (h *UploadHandler) ServeStatic() http.Handler {
	return http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.dir)))
}
