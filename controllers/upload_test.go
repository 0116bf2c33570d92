package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urboijano/MassageHaven/storage"
)

func TestUpload(t *testing.T) {
	r, cfg := setupRouter(t, storage.NewMemStorage())
	token := adminToken(t)

	newUpload := func(t *testing.T, field, storedName string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if storedName != "" {
			require.NoError(t, mw.WriteField("filename", storedName))
		}
		fw, err := mw.CreateFormFile(field, "photo.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("stores the file under the requested name", func(t *testing.T) {
		body, contentType := newUpload(t, "file", "massage-room.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Filename string `json:"filename"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, "massage-room.jpg", resp.Filename)

		_, err := os.Stat(filepath.Join(cfg.UploadDir, "massage-room.jpg"))
		assert.NoError(t, err)
	})

	t.Run("generates a name when none is given", func(t *testing.T) {
		body, contentType := newUpload(t, "file", "")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Filename string `json:"filename"`
		}
		decodeBody(t, w, &resp)
		assert.NotEmpty(t, resp.Filename)
		assert.Equal(t, ".jpg", filepath.Ext(resp.Filename))
	})

	t.Run("missing file part is 400", func(t *testing.T) {
		body, contentType := newUpload(t, "attachment", "")
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
