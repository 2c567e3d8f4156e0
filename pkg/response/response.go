package response

import (
	"log"
	"net/http"

	"anoa.com/certdash/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Error standardized error response. Every failure leaves the handler as a
// JSON body with a human-readable "message" field.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"message": err.Error()})
}

// Message responds with a confirmation message only
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
