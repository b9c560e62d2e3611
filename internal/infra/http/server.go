package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "spotify-home-search"

type Server struct {
	*http.Server
}

func New(cfg Config, sh SearchHandler) (*Server, error) {
	engine := gin.New()

	httpPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	engine.Use(gin.Recovery())
	if !cfg.disableMiddleware {
		engine.Use(gin.Logger())
		engine.Use(otelgin.Middleware(serviceName))
		engine.Use(RequestID())
		engine.Use(Metrics())
	}

	engine.GET("/health", handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.GET("/search/:type/*query", sh.Search)
	engine.POST("/cache/clear", sh.ClearCache)

	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", httpPort),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}, nil
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
