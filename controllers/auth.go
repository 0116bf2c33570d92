// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks admin credentials against the stored bcrypt hash and
// issues a bearer token for the admin routes.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := h.store.GetUserByUsername(input.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error logging in")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.Username, h.cfg.JWTSecret, h.cfg.JWTExpiry)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
