// Package httperr shapes handler failures into the JSON error envelope the
// API returns, while keeping the original error on the gin context for the
// logging and error middleware.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the client-facing error envelope. Status travels out of band
// as the HTTP status code; Detail carries optional field-level context.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and stops the handler chain. The cause
// is attached to the context as a public gin error so the error middleware
// can log the full chain; the client only ever sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
