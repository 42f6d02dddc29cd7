package services

import (
	"context"
	"fmt"
	"time"

	"watchdog_gateway/logging"
	"watchdog_gateway/models"
	pb "watchdog_gateway/proto"

	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TickerNotFound is the message of every rejected quote request.
const TickerNotFound = "Ticker doesn't exist"

const errorDomain = "watchdog"

// Reasons attached to a TickerNotFound rejection.
const (
	ReasonUnknownSymbol = "UNKNOWN_SYMBOL"
	ReasonEmptyWindow   = "EMPTY_WINDOW"
)

// QuoteService implements pb.QuotesServer on top of a MarketData provider.
type QuoteService struct {
	pb.UnimplementedQuotesServer

	log      *logging.Logger
	provider MarketData
	timeout  time.Duration
}

// NewQuoteService creates the quotes handler. A zero timeout leaves
// provider calls unbounded.
func NewQuoteService(log *logging.Logger, provider MarketData, timeout time.Duration) *QuoteService {
	return &QuoteService{
		log:      log.Named("quotes"),
		provider: provider,
		timeout:  timeout,
	}
}

// Detect returns the opening price of every hourly bar of the period.
func (s *QuoteService) Detect(ctx context.Context, req *pb.QuoteRequest) (*pb.QuoteResponse, error) {
	symbol, period := req.GetName(), req.GetPeriod()
	s.log.Info("Detecting quotes", logging.Int("size", len(symbol)), logging.String("period", period))

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	bars, err := s.provider.History(ctx, symbol, period, models.IntervalHourly)
	if err != nil {
		return nil, s.providerError(err, period)
	}
	if len(bars) == 0 {
		return nil, s.notFound(ctx, symbol)
	}

	quotes := make([]*pb.Quote, 0, len(bars))
	for _, b := range bars {
		quotes = append(quotes, &pb.Quote{
			Time:  &timestamppb.Timestamp{Seconds: b.Time.Unix()},
			Price: float32(b.Open),
		})
	}
	return &pb.QuoteResponse{Quotes: quotes}, nil
}

func (s *QuoteService) providerError(err error, period string) error {
	switch {
	case errors.Is(err, ErrUnsupportedPeriod):
		return status.Error(codes.InvalidArgument, fmt.Sprintf("unsupported period %q", period))
	case errors.Is(err, context.DeadlineExceeded):
		s.log.Warn("Market data lookup timed out", logging.Error(err))
		return status.Error(codes.DeadlineExceeded, "market data lookup timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	}
	s.log.Error("Market data lookup failed", logging.Error(err))
	return status.Error(codes.Internal, "market data lookup failed")
}

// notFound builds the rejection for an empty result. The code and message
// never change; the detail says why when the provider can tell.
func (s *QuoteService) notFound(ctx context.Context, symbol string) error {
	st := status.New(codes.InvalidArgument, TickerNotFound)

	resolver, ok := s.provider.(SymbolResolver)
	if !ok {
		return st.Err()
	}
	reason := ReasonEmptyWindow
	exists, err := resolver.SymbolExists(ctx, symbol)
	if err != nil {
		s.log.Debug("Could not resolve symbol", logging.Error(err))
		return st.Err()
	}
	if !exists {
		reason = ReasonUnknownSymbol
	}

	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   errorDomain,
		Metadata: map[string]string{"symbol": symbol},
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
