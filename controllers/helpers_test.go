package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/urboijano/MassageHaven/config"
	"github.com/urboijano/MassageHaven/controllers"
	"github.com/urboijano/MassageHaven/routes"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T, store storage.Storage) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:        "8080",
		JWTSecret:   testSecret,
		JWTExpiry:   1,
		UploadDir:   t.TempDir(),
		CORSOrigins: []string{"http://localhost:3000"},
	}
	h := controllers.New(store, cfg)
	return routes.SetupRouter(h, cfg), cfg
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("admin", testSecret, 1)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
