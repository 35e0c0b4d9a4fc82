// Package gin wraps the gin-gonic engine instantiation, so other
// adapters (e.g., the config package) do not need to know which
// middlewares are provided by which third-party packages.
package gin

import (
	"log/slog"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New creates a gin engine in the release mode without any default
// middleware and registers the given middlewares.
func New(middlewares ...HandlerFunc) *Engine {
	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger logs each request using the default slog logger.
func Logger() HandlerFunc {
	return logger.New(slog.Default())
}

// Recovery recovers from panics, logging them with the default slog
// logger, and responds with 500.
func Recovery() HandlerFunc {
	return recovery.New(slog.Default())
}
