package cors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	allowedHeaders = "Content-Type, X-Requested-With, X-Request-ID"
	allowedMethods = "GET, HEAD, POST, PUT, OPTIONS"
	// Content-Disposition carries the roster export file name.
	exposedHeaders = "Content-Disposition, X-Request-ID"
)

// New lets browsers on the configured origins call the student API and read
// report downloads. With no origins configured any caller is accepted.
func New(allowedOrigins []string) gin.HandlerFunc {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[normalize(origin)] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		if value := allowOrigin(origins, c.GetHeader("Origin")); value != "" {
			header.Set("Access-Control-Allow-Origin", value)
			header.Set("Access-Control-Expose-Headers", exposedHeaders)
		}
		header.Add("Vary", "Origin")

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		header.Set("Access-Control-Allow-Headers", allowedHeaders)
		header.Set("Access-Control-Allow-Methods", allowedMethods)
		header.Set("Access-Control-Max-Age", "600")
		c.AbortWithStatus(http.StatusNoContent)
	}
}

// allowOrigin returns the Access-Control-Allow-Origin value for a request, or
// "" when the origin is not permitted.
func allowOrigin(origins map[string]struct{}, origin string) string {
	if len(origins) == 0 {
		if origin == "" {
			return "*"
		}
		return origin
	}
	if origin == "" {
		return ""
	}
	if _, ok := origins[normalize(origin)]; ok {
		return origin
	}
	return ""
}

func normalize(origin string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
}
