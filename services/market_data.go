package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"watchdog_gateway/logging"
	"watchdog_gateway/models"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//go:generate go run go.uber.org/mock/mockgen -destination mocks/market_data_mock.go -package mocks watchdog_gateway/services MarketData,SymbolResolver

// ErrUnsupportedPeriod is returned when a period token cannot be turned
// into a lookback window.
var ErrUnsupportedPeriod = errors.New("unsupported period")

// MarketData returns historical bars for a symbol, oldest first. An empty
// result means the provider has no data for the symbol over the window.
type MarketData interface {
	History(ctx context.Context, symbol, period, interval string) ([]models.Bar, error)
}

// SymbolResolver is implemented by providers which can tell whether a
// symbol exists independently of its history.
type SymbolResolver interface {
	SymbolExists(ctx context.Context, symbol string) (bool, error)
}

// Yahoo only serves hourly bars for the last 730 days.
const maxHourlyLookback = 730 * 24 * time.Hour

var periodRe = regexp.MustCompile(`^([1-9][0-9]*)(d|wk|mo|y)$`)

// Window is the time range a period token stands for. Day periods count
// trading days, so the window is widened to cover weekends and holidays
// and trimmed back once the bars are known.
type Window struct {
	Start       time.Time
	End         time.Time
	TradingDays int
}

// ParsePeriod understands Nd, Nwk, Nmo, Ny, ytd and max.
func ParsePeriod(period string, now time.Time) (Window, error) {
	now = now.UTC()
	w := Window{End: now}

	switch period {
	case "ytd":
		w.Start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return w, nil
	case "max":
		w.Start = now.Add(-maxHourlyLookback)
		return w, nil
	}

	m := periodRe.FindStringSubmatch(period)
	if m == nil {
		return Window{}, errors.Wrapf(ErrUnsupportedPeriod, "%q", period)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Window{}, errors.Wrapf(ErrUnsupportedPeriod, "%q", period)
	}

	switch m[2] {
	case "d":
		// five sessions a week, plus a week for holidays
		w.TradingDays = n
		w.Start = now.AddDate(0, 0, -(n*7/5 + 7))
	case "wk":
		w.Start = now.AddDate(0, 0, -7*n)
	case "mo":
		w.Start = now.AddDate(0, -n, 0)
	case "y":
		w.Start = now.AddDate(-n, 0, 0)
	}

	if earliest := now.Add(-maxHourlyLookback); w.Start.Before(earliest) {
		w.Start = earliest
	}
	return w, nil
}

// Trim drops bars outside the window. For day periods only the bars of the
// last TradingDays distinct dates are kept, dates being taken in the
// location of each bar's time (the exchange's). Order is preserved.
func (w Window) Trim(bars []models.Bar) []models.Bar {
	out := make([]models.Bar, 0, len(bars))
	for _, b := range bars {
		if b.Time.Before(w.Start) || b.Time.After(w.End) {
			continue
		}
		out = append(out, b)
	}
	if w.TradingDays == 0 {
		return out
	}

	seen := 0
	last := ""
	for i := len(out) - 1; i >= 0; i-- {
		day := out[i].Time.Format("2006-01-02")
		if day != last {
			seen++
			last = day
		}
		if seen > w.TradingDays {
			return out[i+1:]
		}
	}
	return out
}

// YahooMarketData reads bars from the Yahoo Finance chart API.
type YahooMarketData struct {
	log *logging.Logger
	now func() time.Time

	fetch  func(ctx context.Context, symbol string, interval datetime.Interval, start, end time.Time) ([]models.Bar, error)
	lookup func(ctx context.Context, symbol string) (*finance.Quote, error)
}

func NewYahooMarketData(log *logging.Logger) *YahooMarketData {
	return &YahooMarketData{
		log:    log.Named("yahoo"),
		now:    time.Now,
		fetch:  fetchChart,
		lookup: lookupQuote,
	}
}

func (y *YahooMarketData) History(ctx context.Context, symbol, period, interval string) ([]models.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w, err := ParsePeriod(period, y.now())
	if err != nil {
		return nil, err
	}

	bars, err := y.fetch(ctx, symbol, datetime.Interval(interval), w.Start, w.End)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "could not fetch %s history", symbol)
		}
		// the chart endpoint answers unknown symbols with an error rather
		// than an empty series
		if isNotFound(err) {
			y.log.Debug("Symbol not found", logging.String("symbol", symbol), logging.Error(err))
			return nil, nil
		}
		if exists, lerr := y.SymbolExists(ctx, symbol); lerr == nil && !exists {
			y.log.Debug("Symbol not found", logging.String("symbol", symbol))
			return nil, nil
		}
		return nil, errors.Wrapf(err, "could not fetch %s history", symbol)
	}
	return w.Trim(bars), nil
}

func (y *YahooMarketData) SymbolExists(ctx context.Context, symbol string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	q, err := y.lookup(ctx, symbol)
	if err != nil {
		return false, errors.Wrapf(err, "could not look up %s", symbol)
	}
	return q != nil, nil
}

// isNotFound reports whether a chart error is Yahoo saying it has no data
// for the symbol, as opposed to a failed request.
func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no data found") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "404")
}

func lookupQuote(ctx context.Context, symbol string) (*finance.Quote, error) {
	iter := quote.ListP(&quote.Params{
		Params:  finance.Params{Context: &ctx},
		Symbols: []string{symbol},
	})
	var q *finance.Quote
	for iter.Next() {
		q = iter.Quote()
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return q, nil
}

func fetchChart(ctx context.Context, symbol string, interval datetime.Interval, start, end time.Time) ([]models.Bar, error) {
	iter := chart.Get(&chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Interval: interval,
		Start:    toDatetime(start),
		// the end date is exclusive
		End: toDatetime(end.AddDate(0, 0, 1)),
	})

	var (
		bars []models.Bar
		loc  *time.Location
	)
	for iter.Next() {
		if loc == nil {
			loc = exchangeLocation(iter.Meta().ExchangeTimezoneName)
		}
		b := iter.Bar()
		// missing bars come back with zero prices
		if !b.Open.GreaterThan(decimal.Zero) {
			continue
		}
		bars = append(bars, models.Bar{
			Time:     time.Unix(int64(b.Timestamp), 0).In(loc),
			Open:     b.Open.InexactFloat64(),
			High:     b.High.InexactFloat64(),
			Low:      b.Low.InexactFloat64(),
			Close:    b.Close.InexactFloat64(),
			AdjClose: b.AdjClose.InexactFloat64(),
			Volume:   int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return bars, nil
}

// exchangeLocation resolves the exchange's IANA zone, falling back to UTC.
func exchangeLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func toDatetime(t time.Time) *datetime.Datetime {
	return &datetime.Datetime{
		Month: int(t.Month()),
		Day:   t.Day(),
		Year:  t.Year(),
	}
}
