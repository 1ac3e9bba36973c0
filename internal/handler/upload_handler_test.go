package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartImage arma un body multipart con un archivo en el campo `image`.
func multipartImage(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	h, err := NewUploadHandler(t.TempDir())
	require.NoError(t, err)

	t.Run("guarda png con nombre único", func(t *testing.T) {
		body, ct := multipartImage(t, "poster.png", "image/png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"imagePath":"/uploads/image-`)
		assert.Contains(t, rec.Body.String(), `.png`)

		entries, err := os.ReadDir(h.dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, strings.HasPrefix(entries[0].Name(), "image-"))
		assert.True(t, strings.HasSuffix(entries[0].Name(), ".png"))
	})

	t.Run("rechaza extensión no permitida", func(t *testing.T) {
		body, ct := multipartImage(t, "nota.txt", "text/plain", []byte("hola"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Only JPEG, PNG, and WebP")
	})

	t.Run("rechaza content-type que no matchea la extensión", func(t *testing.T) {
		body, ct := multipartImage(t, "falso.png", "application/octet-stream", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sin campo image responde 400", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("other", "value"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No image uploaded")
	})
}

func TestUploadDelete(t *testing.T) {
	dir := t.TempDir()
	h, err := NewUploadHandler(dir)
	require.NoError(t, err)

	deleteReq := func(name string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/uploads/"+name, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("filename", name)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		h.Delete(rec, req)
		return rec
	}

	t.Run("borra archivo existente", func(t *testing.T) {
		name := "image-test.png"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))

		rec := deleteReq(name)

		assert.Equal(t, http.StatusOK, rec.Code)
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("archivo inexistente responde 404", func(t *testing.T) {
		rec := deleteReq("no-existe.png")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rechaza path traversal", func(t *testing.T) {
		rec := deleteReq("..")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
