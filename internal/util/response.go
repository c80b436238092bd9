package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONMessage writes a {"message": ...} confirmation body.
func JSONMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// JSONError writes an {"error": ...} body.
func JSONError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// ServerError writes a generic 500 body; detail stays in the server log.
func ServerError(c *gin.Context, msg string) {
	JSONError(c, http.StatusInternalServerError, msg)
}
