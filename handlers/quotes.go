package handlers

import (
	"net/http"
	"strings"

	"watchdog_gateway/models"
	"watchdog_gateway/services"

	"github.com/gin-gonic/gin"
)

// intervalPeriods maps the named lookbacks of /quotes/:symbol/time/:interval.
var intervalPeriods = map[string]string{
	"day":    "1d",
	"week":   "7d",
	"month":  "30d",
	"2month": "60d",
}

func GetQuotes(gw services.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := c.DefaultQuery("period", models.DefaultPeriod)
		getQuotes(c, gw, period)
	}
}

func GetQuotesForInterval(gw services.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		period, ok := intervalPeriods[strings.ToLower(c.Param("interval"))]
		if !ok {
			badRequest(c)
			return
		}
		getQuotes(c, gw, period)
	}
}

func getQuotes(c *gin.Context, gw services.Gateway, period string) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		badRequest(c)
		return
	}

	quotes, err := gw.DetectQuotes(c.Request.Context(), symbol, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.QuoteReply{Symbol: symbol, Period: period, Quotes: quotes})
}
