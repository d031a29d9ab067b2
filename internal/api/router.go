package api

import (
	"net/http"
	"os"
	"strings"
	"time"

	"anchor-sim/internal/api/handlers"
	"anchor-sim/internal/api/middleware"
	"anchor-sim/internal/data"
	"anchor-sim/internal/simulation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig wires the HTTP layer.
type RouterConfig struct {
	Sessions       *data.SessionCache
	AssetDir       string
	StaticDir      string
	CORSOrigins    []string
	StreamInterval time.Duration
	Logger         *zap.Logger
	// TickerFactory overrides the session ticker; nil uses real time.
	TickerFactory simulation.TickerFactory
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	sessionHandler := handlers.NewSessionHandler(cfg.Sessions, cfg.AssetDir, logger, cfg.TickerFactory)
	assetHandler := handlers.NewAssetHandler(cfg.AssetDir, logger)
	streamHandler := handlers.NewStreamHandler(cfg.Sessions, cfg.StreamInterval, cfg.CORSOrigins, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": cfg.Sessions.Len()})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/models", handlers.ListModels)
		api.GET("/assets", assetHandler.ListAssets)

		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions/:id", sessionHandler.GetSession)
		api.DELETE("/sessions/:id", sessionHandler.DeleteSession)
		api.PATCH("/sessions/:id/config", sessionHandler.UpdateConfig)
		api.POST("/sessions/:id/start", sessionHandler.Start)
		api.POST("/sessions/:id/pause", sessionHandler.Pause)
		api.POST("/sessions/:id/reset", sessionHandler.Reset)
		api.GET("/sessions/:id/export", sessionHandler.Export)
		api.GET("/sessions/:id/stream", streamHandler.Stream)
	}

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			router.Static("/assets", cfg.StaticDir+"/assets")
			router.StaticFile("/favicon.ico", cfg.StaticDir+"/favicon.ico")
			// SPA routing: anything outside /api gets index.html.
			router.NoRoute(func(c *gin.Context) {
				if strings.HasPrefix(c.Request.URL.Path, "/api") {
					c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
					return
				}
				c.File(cfg.StaticDir + "/index.html")
			})
			logger.Info("serving static files", zap.String("dir", cfg.StaticDir))
		} else {
			logger.Warn("static directory not found", zap.String("dir", cfg.StaticDir))
		}
	}

	return router
}
