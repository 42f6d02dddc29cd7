package services_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"watchdog_gateway/config"
	"watchdog_gateway/logging"
	pb "watchdog_gateway/proto"
	"watchdog_gateway/services"
	"watchdog_gateway/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testSentimentService struct {
	*services.SentimentService
	ctrl   *gomock.Controller
	scorer *mocks.MockScorer
}

func getTestSentimentService(t *testing.T) *testSentimentService {
	t.Helper()
	ctrl := gomock.NewController(t)
	scorer := mocks.NewMockScorer(ctrl)
	return &testSentimentService{
		SentimentService: services.NewSentimentService(logging.NewTestLogger(), scorer),
		ctrl:             ctrl,
		scorer:           scorer,
	}
}

func TestSentimentDetect(t *testing.T) {
	t.Run("returns the scorer polarity", testSentimentReturnsScore)
	t.Run("empty text is neutral", testSentimentEmptyText)
	t.Run("scores are clamped", testSentimentClamp)
	t.Run("scorer failure is internal", testSentimentScorerError)
	t.Run("NaN is internal", testSentimentNaN)
}

func testSentimentReturnsScore(t *testing.T) {
	svc := getTestSentimentService(t)
	svc.scorer.EXPECT().Polarity(gomock.Any(), "what a day").Times(1).Return(0.25, nil)

	resp, err := svc.Detect(context.Background(), &pb.SentimentRequest{Tweet: "what a day"})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, resp.GetPolarity(), 1e-6)
}

func testSentimentEmptyText(t *testing.T) {
	svc := getTestSentimentService(t)
	// no scorer call expected

	resp, err := svc.Detect(context.Background(), &pb.SentimentRequest{})
	require.NoError(t, err)
	assert.Equal(t, float32(0), resp.GetPolarity())
}

func testSentimentClamp(t *testing.T) {
	svc := getTestSentimentService(t)
	svc.scorer.EXPECT().Polarity(gomock.Any(), "up").Return(1.7, nil)
	svc.scorer.EXPECT().Polarity(gomock.Any(), "down").Return(-3.0, nil)

	up, err := svc.Detect(context.Background(), &pb.SentimentRequest{Tweet: "up"})
	require.NoError(t, err)
	assert.Equal(t, float32(1), up.GetPolarity())

	down, err := svc.Detect(context.Background(), &pb.SentimentRequest{Tweet: "down"})
	require.NoError(t, err)
	assert.Equal(t, float32(-1), down.GetPolarity())
}

func testSentimentScorerError(t *testing.T) {
	svc := getTestSentimentService(t)
	svc.scorer.EXPECT().Polarity(gomock.Any(), gomock.Any()).Return(0.0, errors.New("lexicon unavailable"))

	_, err := svc.Detect(context.Background(), &pb.SentimentRequest{Tweet: "hello"})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func testSentimentNaN(t *testing.T) {
	svc := getTestSentimentService(t)
	svc.scorer.EXPECT().Polarity(gomock.Any(), gomock.Any()).Return(math.NaN(), nil)

	_, err := svc.Detect(context.Background(), &pb.SentimentRequest{Tweet: "hello"})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestSentimentScorerPanicIsInternal(t *testing.T) {
	svc := getTestSentimentService(t)
	svc.scorer.EXPECT().Polarity(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (float64, error) {
		panic("corrupt lexicon")
	})
	srv := startServer(t, config.GRPC{}, svc.SentimentService, nil)

	_, err := srv.gateway(t).DetectSentiment(context.Background(), "hello")
	assert.Equal(t, codes.Internal, status.Code(err))

	// the server survives
	svc.scorer.EXPECT().Polarity(gomock.Any(), gomock.Any()).Return(0.5, nil)
	p, err := srv.gateway(t).DetectSentiment(context.Background(), "hello again")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-6)
}

func TestVaderScorer(t *testing.T) {
	scorer := services.NewVaderScorer()
	ctx := context.Background()

	love, err := scorer.Polarity(ctx, "I love this")
	require.NoError(t, err)
	assert.Greater(t, love, 0.0)

	hate, err := scorer.Polarity(ctx, "I hate this")
	require.NoError(t, err)
	assert.Less(t, hate, 0.0)

	for _, text := range []string{
		"GREAT GREAT GREAT!!! best stock ever :) :) :)",
		"terrible, awful, horrible, worst crash ever!!!",
		"the market opens at 9:30",
		"$AAPL",
	} {
		p, err := scorer.Polarity(ctx, text)
		require.NoError(t, err, text)
		assert.GreaterOrEqual(t, p, -1.0, text)
		assert.LessOrEqual(t, p, 1.0, text)
	}
}

func TestVaderScorerHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := services.NewVaderScorer().Polarity(ctx, "I love this")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentSentimentCalls(t *testing.T) {
	scorer := services.NewVaderScorer()
	svc := services.NewSentimentService(logging.NewTestLogger(), scorer)
	srv := startServer(t, config.GRPC{MaxWorkers: 4}, svc, nil)
	gw := srv.gateway(t)

	texts := make([]string, 64)
	for i := range texts {
		if i%2 == 0 {
			texts[i] = fmt.Sprintf("I love this %d", i)
		} else {
			texts[i] = fmt.Sprintf("I hate this %d", i)
		}
	}

	got := make([]float64, len(texts))
	var eg errgroup.Group
	for i, text := range texts {
		i, text := i, text
		eg.Go(func() error {
			p, err := gw.DetectSentiment(context.Background(), text)
			got[i] = p
			return err
		})
	}
	require.NoError(t, eg.Wait())

	for i, text := range texts {
		want, err := scorer.Polarity(context.Background(), text)
		require.NoError(t, err)
		assert.InDelta(t, want, got[i], 1e-6, text)
	}
}
