package utils

import "github.com/gin-gonic/gin"

// ErrorDetail is the error body shape the browser extension expects.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorResponse writes an error body as {"detail": "..."}.
func ErrorResponse(c *gin.Context, code int, detail string) {
	c.JSON(code, ErrorDetail{Detail: detail})
}
