package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope every failed request returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RespondError writes the error envelope with the given status.
// detail is optional; when present it fills the message field.
func RespondError(c *gin.Context, status int, errMsg string, detail string) {
	c.JSON(status, ErrorResponse{
		Error:   errMsg,
		Message: detail,
	})
}

// RespondOK writes a 200 with the given payload.
func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
