package observability

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var startedAt = time.Now()

// StartStatusServer serves health and metrics beside a capture run. The
// capture pipeline itself stays single-threaded; this only reads counters.
func StartStatusServer(addr string) {
	RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Middleware: keep it lean
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(startedAt).String(),
			"service": "eegctl",
			"version": "0.1.0",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	go func() {
		if err := r.Run(addr); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("status server stopped")
		}
	}()
}
