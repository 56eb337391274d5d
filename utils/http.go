package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// ClientIP resolves the address used as the rate-limiter bucket key: the
// first X-Forwarded-For entry when present, otherwise the connection address.
// Clients with no usable address all share the "unknown" bucket.
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}

	remote := strings.TrimSpace(c.Request.RemoteAddr)
	if host, _, err := net.SplitHostPort(remote); err == nil && host != "" {
		return host
	}
	if remote != "" {
		return remote
	}
	return "unknown"
}
