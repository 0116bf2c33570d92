package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.store.GetSettings()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Settings not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching settings")
		}
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies a partial update to the settings singleton,
// creating it with business defaults on first write.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var input models.UpdateSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid settings data: "+err.Error())
		return
	}

	settings, err := h.store.UpdateSettings(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
