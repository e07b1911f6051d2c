// Package response defines the single JSON envelope used by every API
// endpoint. The legacy system mixed bare arrays with ad hoc success wrappers;
// here all handlers go through these helpers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform API response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// List wraps a paginated collection together with the total row count so
// clients can page without a second query.
type List struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page,omitempty"`
	Limit int         `json:"limit,omitempty"`
}

// OK writes a success envelope with the given status code.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// Err writes an error envelope with the given status code.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: false, Error: msg})
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
