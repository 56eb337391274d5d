package middleware

import (
	"log"
	"time"

	"supplier-backend/utils"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		clientIP := utils.ClientIP(c)
		log.Printf("%s %s %s %d %s", method, path, clientIP, status, latency)
	}
}
