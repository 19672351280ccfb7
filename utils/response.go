package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError aborts the request with a JSON error body
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// RespondWithValidationError aborts the request with 400 and the offending field
func RespondWithValidationError(c *gin.Context, err *ValidationError) {
	c.AbortWithStatusJSON(400, err)
}
