package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Success sends a payload under a success envelope, matching the shape the
// client expects from state-changing endpoints
func Success(c *gin.Context, status int, key string, data interface{}) {
	c.JSON(status, gin.H{"success": true, key: data})
}

// Message sends a success envelope with a human-readable message only
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
