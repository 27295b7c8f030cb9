package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/5-in-a-row/backend/internal/transport/http/middleware"
)

type RouterDeps struct {
	MoveHandler    *MoveHandler
	WebSocket      gin.HandlerFunc
	AllowedOrigins []string
	JWTSecret      string
	RedisEnabled   func() bool
	Connections    ConnectionCounter
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	redisEnabled := deps.RedisEnabled
	if redisEnabled == nil {
		redisEnabled = func() bool { return false }
	}
	router.GET("/health", Health(redisEnabled, deps.Connections))

	// Public routes
	router.POST("/api/board/winner", deps.MoveHandler.Winner)

	// Protected routes
	protected := router.Group("/api/ai")
	protected.Use(middleware.AuthMiddleware(deps.JWTSecret))
	{
		protected.POST("/move", deps.MoveHandler.RequestMove)
		protected.GET("/decisions", deps.MoveHandler.GetDecisions)
		protected.GET("/decisions/:id", deps.MoveHandler.GetDecision)
	}

	// WebSocket route (auth handled inside the WS handler itself)
	if deps.WebSocket != nil {
		router.GET("/ws", deps.WebSocket)
	}

	return router
}
