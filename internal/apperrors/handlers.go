package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response on the gin context.
func HandleError(c *gin.Context, err *AppError) {
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
