package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StandardResponse represents the standard page data response structure
type StandardResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Page sends the data payload for a server-rendered page along with any
// pending flash messages. The view layer is an external collaborator; this
// is the data it would render.
func Page(c *gin.Context, message string, data interface{}) {
	flashes := Flashes(c)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"flashes": flashes,
		"data":    data,
	})
}

// RedirectWithFlash queues a flash message and redirects the browser
func RedirectWithFlash(c *gin.Context, location, message string) {
	Flash(c, message)
	c.Redirect(http.StatusFound, location)
}

// Error sends a standardized error response
func Error(c *gin.Context, statusCode int, message string, err interface{}) {
	response := StandardResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		response.Data = gin.H{"error": err}
	}
	c.JSON(statusCode, response)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusInternalServerError, message, err)
}
