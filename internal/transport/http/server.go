package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dpetruhin/roomcast-server/internal/config"
	"github.com/dpetruhin/roomcast-server/internal/core"
)

// NewServer builds the HTTP server with the relay's routes: health
// probe, the embedded chat page, and the two WebSocket entry points
// (default room and path-selected room).
func NewServer(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/", chatPageHandler)

	ws := NewWSHandler(hub, cfg, logger)
	router.GET("/ws", ws.Serve)
	router.GET("/ws/:room", ws.Serve)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(stdhttp.StatusOK, gin.H{"status": "ok"})
}
