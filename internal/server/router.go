package server

import (
	"github.com/gin-gonic/gin"

	"github.com/jfuginay/courseforge-ai/internal/coursegen"
	"github.com/jfuginay/courseforge-ai/internal/logger"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

// RouterConfig carries everything the router needs to wire handlers.
type RouterConfig struct {
	Generator coursegen.Generator
	Store     store.Store
	Log       *logger.Logger

	// GenerateRPS bounds the LLM-backed endpoints. Zero disables
	// limiting, which the tests rely on.
	GenerateRPS   float64
	GenerateBurst int
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORS())
	r.Use(RequestLog(cfg.Log))

	r.GET("/healthcheck", func(c *gin.Context) {
		RespondOK(c, gin.H{"status": "ok"})
	})

	analyze := NewAnalyzeHandler(cfg.Generator, cfg.Log)
	courses := NewCourseHandler(cfg.Generator, cfg.Store, cfg.Log)
	progress := NewProgressHandler(cfg.Store, cfg.Log)

	api := r.Group("/api")
	{
		generate := api.Group("")
		if cfg.GenerateRPS > 0 {
			generate.Use(RateLimit(cfg.GenerateRPS, cfg.GenerateBurst))
		}
		generate.POST("/analyze-video", analyze.Analyze)
		generate.POST("/courses", courses.Create)

		api.GET("/courses", courses.Get)
		api.POST("/progress", progress.Update)
		api.GET("/progress", progress.Get)
	}

	return r
}
