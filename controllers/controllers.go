package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/config"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

// Handler bundles the storage backend and configuration every route
// needs. The backend is injected once at startup; handlers never pick
// one themselves.
type Handler struct {
	store storage.Storage
	cfg   *config.Config
}

func New(store storage.Storage, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// paramID parses the :id path parameter. On failure it writes a 400
// response and reports false.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
