package services

import (
	"context"
	"encoding/json"
	"time"

	"watchdog_gateway/config"
	"watchdog_gateway/logging"
	"watchdog_gateway/models"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func ConnectToNATS(url string, opts ...nats.Option) (*nats.Conn, error) {
	opts = append([]nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
	}, opts...)

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to nats at %s", url)
	}
	return nc, nil
}

func PublishToNATS(nc *nats.Conn, subject string, message []byte) error {
	if err := nc.Publish(subject, message); err != nil {
		return errors.Wrapf(err, "could not publish to %s", subject)
	}
	return nil
}

// DetectWorker answers sentiment and quote requests received over NATS by
// forwarding them to the gateway. Replies are JSON; failures carry the
// gRPC code name and message.
type DetectWorker struct {
	log     *logging.Logger
	nc      *nats.Conn
	gateway Gateway
	cfg     config.NATS
}

func NewDetectWorker(log *logging.Logger, nc *nats.Conn, gateway Gateway, cfg config.NATS) *DetectWorker {
	return &DetectWorker{
		log:     log.Named("worker"),
		nc:      nc,
		gateway: gateway,
		cfg:     cfg,
	}
}

// Run subscribes to both subjects in the configured queue group and blocks
// until ctx is done, then drains the subscriptions.
func (w *DetectWorker) Run(ctx context.Context) error {
	handlers := map[string]func(context.Context, []byte) interface{}{
		w.cfg.SentimentSubject: func(ctx context.Context, data []byte) interface{} { return w.HandleSentiment(ctx, data) },
		w.cfg.QuoteSubject:     func(ctx context.Context, data []byte) interface{} { return w.HandleQuote(ctx, data) },
	}

	subs := make([]*nats.Subscription, 0, len(handlers))
	defer func() {
		for _, sub := range subs {
			if err := sub.Drain(); err != nil {
				w.log.Warn("Could not drain subscription", logging.String("subject", sub.Subject), logging.Error(err))
			}
		}
	}()

	for subject, handle := range handlers {
		handle := handle
		sub, err := w.nc.QueueSubscribe(subject, w.cfg.QueueGroup, func(msg *nats.Msg) {
			w.reply(msg, handle(ctx, msg.Data))
		})
		if err != nil {
			return errors.Wrapf(err, "could not subscribe to %s", subject)
		}
		subs = append(subs, sub)
		w.log.Info("Listening for detect requests", logging.String("subject", subject), logging.String("queue", w.cfg.QueueGroup))
	}

	<-ctx.Done()
	return nil
}

func (w *DetectWorker) reply(msg *nats.Msg, reply interface{}) {
	if msg.Reply == "" {
		w.log.Debug("Dropping reply to a request without reply subject", logging.String("subject", msg.Subject))
		return
	}
	data, err := json.Marshal(reply)
	if err != nil {
		w.log.Error("Could not serialize reply", logging.Error(err))
		return
	}
	if err := PublishToNATS(w.nc, msg.Reply, data); err != nil {
		w.log.Error("Could not send reply", logging.Error(err))
	}
}

func (w *DetectWorker) HandleSentiment(ctx context.Context, data []byte) models.SentimentReply {
	var req models.SentimentRequestMessage
	if err := json.Unmarshal(data, &req); err != nil {
		w.log.Debug("Failed to deserialize message", logging.Error(err))
		return models.SentimentReply{Error: "invalid request", Code: codes.InvalidArgument.String()}
	}

	polarity, err := w.gateway.DetectSentiment(ctx, req.Text)
	if err != nil {
		st := status.Convert(err)
		return models.SentimentReply{Error: st.Message(), Code: st.Code().String()}
	}
	return models.SentimentReply{Polarity: polarity}
}

func (w *DetectWorker) HandleQuote(ctx context.Context, data []byte) models.QuoteReply {
	var req models.QuoteRequestMessage
	if err := json.Unmarshal(data, &req); err != nil || req.Symbol == "" {
		return models.QuoteReply{Error: "invalid request", Code: codes.InvalidArgument.String()}
	}
	if req.Period == "" {
		req.Period = models.DefaultPeriod
	}

	reply := models.QuoteReply{Symbol: req.Symbol, Period: req.Period}
	quotes, err := w.gateway.DetectQuotes(ctx, req.Symbol, req.Period)
	if err != nil {
		st := status.Convert(err)
		reply.Error, reply.Code = st.Message(), st.Code().String()
		return reply
	}
	reply.Quotes = quotes
	return reply
}
