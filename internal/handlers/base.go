package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound sends the standard 404 body used across the API.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// BadRequest sends a 400 with a message body.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// InternalError logs the raw error and sends it back with a 500, matching the
// catch-all error handling of the rest of the API.
func InternalError(c *gin.Context, err error) {
	log.Println(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
