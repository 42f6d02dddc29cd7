package handlers

import (
	"net/http"

	"watchdog_gateway/models"
	"watchdog_gateway/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds the gateway calls made for one batch request.
const batchConcurrency = 8

func DetectSentiment(gw services.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SentimentRequestMessage
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}

		polarity, err := gw.DetectSentiment(c.Request.Context(), req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SentimentReply{Polarity: polarity})
	}
}

// DetectSentimentBatch scores every text and their mean. The mean of no
// texts is 0.
func DetectSentimentBatch(gw services.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SentimentBatchRequestMessage
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}

		polarities := make([]float64, len(req.Texts))
		eg, ctx := errgroup.WithContext(c.Request.Context())
		eg.SetLimit(batchConcurrency)
		for i, text := range req.Texts {
			i, text := i, text
			eg.Go(func() error {
				p, err := gw.DetectSentiment(ctx, text)
				polarities[i] = p
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SentimentBatchReply{
			Polarities: polarities,
			Average:    average(polarities),
		})
	}
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
