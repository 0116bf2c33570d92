package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urboijano/MassageHaven/utils"
)

// Upload stores a multipart image under the configured upload
// directory. The caller may pick the stored name via the "filename"
// form field; otherwise a random one is generated.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	filename := c.PostForm("filename")
	if filename == "" {
		filename = uuid.New().String() + filepath.Ext(file.Filename)
	}
	// Strip any path components a client may have smuggled in.
	filename = filepath.Base(filename)

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error saving file")
		return
	}

	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, filename)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error saving file")
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": filename})
}
