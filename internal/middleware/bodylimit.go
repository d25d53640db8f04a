package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/pkg/response"
)

// BodyLimit caps the request body at n bytes. A declared Content-Length over
// the cap is refused with 413; chunked bodies fail when the handler reads past it.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			response.PayloadTooLarge(c, fmt.Sprintf("request body must not exceed %d bytes", n))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
