package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard error envelope used by every
// handler.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
