package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

func (h *Handler) GetStaff(c *gin.Context) {
	staff, err := h.store.GetAllStaff()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching staff")
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *Handler) GetActiveStaff(c *gin.Context) {
	staff, err := h.store.GetActiveStaff()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching active staff")
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *Handler) GetStaffMember(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	member, err := h.store.GetStaff(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching staff member")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var input models.InsertStaff
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff data: "+err.Error())
		return
	}

	member, err := h.store.CreateStaff(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error creating staff member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.UpdateStaff
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff data: "+err.Error())
		return
	}

	member, err := h.store.UpdateStaff(id, input)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error updating staff member")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteStaff(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting staff member")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
