package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConnectionCounter interface {
	Count() int
}

// Health handles GET /health
func Health(redisEnabled func() bool, conns ConnectionCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "ok", "redis": redisEnabled()}
		if conns != nil {
			body["ws_connections"] = conns.Count()
		}
		c.JSON(http.StatusOK, body)
	}
}
