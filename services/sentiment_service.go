package services

import (
	"context"
	"math"

	"watchdog_gateway/logging"
	pb "watchdog_gateway/proto"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SentimentService implements pb.SentimentServer on top of a Scorer.
type SentimentService struct {
	pb.UnimplementedSentimentServer

	log    *logging.Logger
	scorer Scorer
}

func NewSentimentService(log *logging.Logger, scorer Scorer) *SentimentService {
	return &SentimentService{
		log:    log.Named("sentiment"),
		scorer: scorer,
	}
}

// Detect scores the tweet. Empty text is neutral and never reaches the scorer.
func (s *SentimentService) Detect(ctx context.Context, req *pb.SentimentRequest) (*pb.SentimentResponse, error) {
	text := req.GetTweet()
	s.log.Info("Detecting sentiment", logging.Int("size", len(text)))

	if text == "" {
		return &pb.SentimentResponse{Polarity: 0}, nil
	}

	polarity, err := s.scorer.Polarity(ctx, text)
	if err != nil {
		s.log.Error("Could not score text", logging.Error(err))
		return nil, status.Error(codes.Internal, "could not score text")
	}
	if math.IsNaN(polarity) {
		s.log.Error("Scorer returned NaN")
		return nil, status.Error(codes.Internal, "could not score text")
	}

	return &pb.SentimentResponse{Polarity: float32(clamp(polarity, -1, 1))}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
