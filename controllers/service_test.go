package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/storage"
)

func TestCreateService(t *testing.T) {
	r, _ := setupRouter(t, storage.NewEmptyMemStorage())
	token := adminToken(t)

	t.Run("first service gets id 1 and a timestamp", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services", models.InsertService{
			Name:        "Swedish Massage",
			Description: "A gentle, relaxing massage.",
			Price:       100,
			Duration:    60,
			ImageURL:    "x",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var svc models.Service
		decodeBody(t, w, &svc)
		assert.Equal(t, 1, svc.ID)
		assert.Equal(t, "Swedish Massage", svc.Name)
		assert.False(t, svc.CreatedAt.IsZero())
	})

	t.Run("ids are distinct and increasing", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services", models.InsertService{
			Name:        "Hot Stone Therapy",
			Description: "Heated stones release tension.",
			Price:       150,
			Duration:    90,
			ImageURL:    "y",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var svc models.Service
		decodeBody(t, w, &svc)
		assert.Equal(t, 2, svc.ID)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services", map[string]interface{}{
			"name": "No price",
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services", map[string]interface{}{
			"name":        "Free massage",
			"description": "d",
			"price":       -5,
			"duration":    60,
			"imageUrl":    "x",
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/services", models.InsertService{
			Name:        "Unauthorized",
			Description: "d",
			Price:       10,
			Duration:    30,
			ImageURL:    "x",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetServices(t *testing.T) {
	r, _ := setupRouter(t, storage.NewMemStorage())

	t.Run("lists seeded services", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/services", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var services []models.Service
		decodeBody(t, w, &services)
		assert.Len(t, services, 6)
	})

	t.Run("featured subset", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/services/featured", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var services []models.Service
		decodeBody(t, w, &services)
		require.Len(t, services, 3)
		for _, svc := range services {
			assert.True(t, svc.Featured)
		}
	})

	t.Run("by id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/services/1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var svc models.Service
		decodeBody(t, w, &svc)
		assert.Equal(t, "Deep Tissue Massage", svc.Name)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/services/999", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateService(t *testing.T) {
	r, _ := setupRouter(t, storage.NewMemStorage())
	token := adminToken(t)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		newPrice := 125.0
		w := doJSON(t, r, http.MethodPatch, "/api/services/1", models.UpdateService{
			Price: &newPrice,
		}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var svc models.Service
		decodeBody(t, w, &svc)
		assert.Equal(t, 125.0, svc.Price)
		assert.Equal(t, "Deep Tissue Massage", svc.Name)
		assert.Equal(t, 60, svc.Duration)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		name := "x"
		w := doJSON(t, r, http.MethodPatch, "/api/services/999", models.UpdateService{Name: &name}, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteService(t *testing.T) {
	r, _ := setupRouter(t, storage.NewMemStorage())
	token := adminToken(t)

	t.Run("delete removes the service", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/services/6", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/services/6", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deleting a missing service is 404, not silent success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/services/999", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
