// Package api exposes the query service, the voice adapter and the refresh
// trigger over HTTP.
package api

import (
	"context"
	"log/slog"
	"time"

	"newpunch-journalist/internal/headlines"
	"newpunch-journalist/internal/voice"

	"github.com/gin-gonic/gin"
)

// Refresher runs one full refresh cycle.
type Refresher interface {
	RunOnce(ctx context.Context) bool
}

// Deps are the components the routes call into. Refresher and Ping are optional.
type Deps struct {
	Query     *headlines.Service
	Voice     *voice.Adapter
	Refresher Refresher
	Ping      func(ctx context.Context) error
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	h := &handlers{deps: d}
	r.GET("/healthz", h.health)
	v1 := r.Group("/v1")
	v1.POST("/query", h.query)
	v1.POST("/voice", h.voice)
	if d.Refresher != nil {
		v1.POST("/refresh", h.refresh)
	}
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http: request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start).String(),
		)
	}
}
