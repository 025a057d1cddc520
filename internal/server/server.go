package server

import (
	"ctchen222/three-in-a-row/internal/api/controller"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server routes the match service's HTTP API.
type Server struct {
	engine *gin.Engine
}

func NewServer(devices *controller.DeviceController, matches *controller.MatchController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	engine.POST("/devices", devices.Register)
	engine.GET("/devices/:id/info", devices.Info)

	engine.POST("/matches", matches.Join)
	engine.GET("/matches/waiting-status", matches.WaitingStatus)
	engine.GET("/matches/:id", matches.Get)
	engine.POST("/matches/:id/moves", matches.Move)

	return &Server{engine: engine}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the engine wrapped in server-side tracing.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.engine, "match-service",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "HTTP request",
			"http.method", c.Request.Method,
			"http.route", c.FullPath(),
			"http.status", c.Writer.Status(),
			"http.duration", time.Since(start),
		)
	}
}
