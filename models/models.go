package models

import "time"

// IntervalHourly is the only bar granularity the gateway asks providers for.
const IntervalHourly = "1h"

// DefaultPeriod is used by the HTTP and NATS edges when no period is given.
const DefaultPeriod = "1d"

// Bar is one OHLCV bar as returned by a market data provider.
type Bar struct {
	Time     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   int64
}

// PricePoint is the projection of a bar the gateway serves: when the bar
// started and its opening price.
type PricePoint struct {
	Time  int64   `json:"time"`
	Price float64 `json:"price"`
}

// SentimentRequestMessage is the JSON body accepted over HTTP and NATS.
type SentimentRequestMessage struct {
	Text string `json:"text"`
}

type SentimentBatchRequestMessage struct {
	Texts []string `json:"texts"`
}

// QuoteRequestMessage is the JSON body accepted over NATS.
type QuoteRequestMessage struct {
	Symbol string `json:"symbol"`
	Period string `json:"period"`
}

type SentimentReply struct {
	Polarity float64 `json:"polarity"`
	Error    string  `json:"error,omitempty"`
	Code     string  `json:"code,omitempty"`
}

type SentimentBatchReply struct {
	Polarities []float64 `json:"polarities"`
	Average    float64   `json:"average"`
}

type QuoteReply struct {
	Symbol string       `json:"symbol"`
	Period string       `json:"period"`
	Quotes []PricePoint `json:"quotes"`
	Error  string       `json:"error,omitempty"`
	Code   string       `json:"code,omitempty"`
}
