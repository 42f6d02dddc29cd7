package handlers

import (
	"net/http"
	"strconv"
	"time"

	"watchdog_gateway/logging"
	"watchdog_gateway/metrics"
	"watchdog_gateway/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP façade of the gateway.
func NewRouter(log *logging.Logger, gw services.Gateway, collector *metrics.Collector) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(observe(collector))

	router.GET("/healthz", Health(gw))
	router.POST("/sentiment", DetectSentiment(gw))
	router.POST("/sentiment/batch", DetectSentimentBatch(gw))
	router.GET("/quotes/:symbol", GetQuotes(gw))
	router.GET("/quotes/:symbol/time/:interval", GetQuotesForInterval(gw))
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	return router
}

func Health(gw services.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gw.Check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func requestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("Served HTTP request",
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("took", time.Since(start)),
			logging.String("remote-ip-addr", c.ClientIP()),
		)
	}
}

func observe(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.Observe(c.Request.Method+" "+route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
