package params

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/pkg/response"
)

// ID parses the :id path parameter as a positive integer. On failure it
// writes a 400 and returns ok=false.
func ID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(n), true
}
