// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

// GetServices retrieves all services
func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.store.GetAllServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetFeaturedServices retrieves the services flagged for the landing page
func (h *Handler) GetFeaturedServices(c *gin.Context) {
	services, err := h.store.GetFeaturedServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching featured services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func (h *Handler) GetService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	service, err := h.store.GetService(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching service")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateService creates a new service
func (h *Handler) CreateService(c *gin.Context) {
	var input models.InsertService
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service data: "+err.Error())
		return
	}

	service, err := h.store.CreateService(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error creating service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService applies a partial update to an existing service
func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.UpdateService
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service data: "+err.Error())
		return
	}

	service, err := h.store.UpdateService(id, input)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error updating service")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service permanently
func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteService(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting service")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
