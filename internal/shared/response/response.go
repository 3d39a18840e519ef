// Package response is the rendering boundary of the site. Handlers resolve a
// request down to either a redirect or a payload; payloads are serialized
// here and nowhere else.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Page struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      *Error      `json:"error,omitempty"`
	RenderedAt string      `json:"rendered_at,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Render writes a successful page body with a render timestamp.
func Render(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Page{
		Success:    true,
		Data:       data,
		RenderedAt: time.Now().Format(time.RFC3339),
	})
}

// Failure writes the opaque storage-failure body. Detail never reaches the
// client; callers log it server-side before calling this.
func Failure(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Page{
		Success: false,
		Error: &Error{
			Code:    "STORAGE_FAILURE",
			Message: "Internal server error",
		},
	})
}
