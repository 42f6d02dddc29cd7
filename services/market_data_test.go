package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"watchdog_gateway/logging"
	"watchdog_gateway/models"
	pb "watchdog_gateway/proto"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testNow = time.Date(2024, time.March, 18, 15, 0, 0, 0, time.UTC) // a Monday

func TestParsePeriod(t *testing.T) {
	for _, tc := range []struct {
		period  string
		start   time.Time
		trading int
	}{
		{"1d", testNow.AddDate(0, 0, -8), 1},
		{"5d", testNow.AddDate(0, 0, -14), 5},
		{"30d", testNow.AddDate(0, 0, -49), 30},
		{"2wk", testNow.AddDate(0, 0, -14), 0},
		{"1mo", testNow.AddDate(0, -1, 0), 0},
		{"1y", testNow.AddDate(-1, 0, 0), 0},
		{"10y", testNow.Add(-maxHourlyLookback), 0},
		{"max", testNow.Add(-maxHourlyLookback), 0},
		{"ytd", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	} {
		t.Run(tc.period, func(t *testing.T) {
			w, err := ParsePeriod(tc.period, testNow)
			require.NoError(t, err)
			assert.Equal(t, tc.start, w.Start)
			assert.Equal(t, testNow, w.End)
			assert.Equal(t, tc.trading, w.TradingDays)
		})
	}

	for _, bad := range []string{"", "0d", "1h", "d", "-1d", "1 d", "forever"} {
		_, err := ParsePeriod(bad, testNow)
		assert.ErrorIs(t, err, ErrUnsupportedPeriod, bad)
	}
}

func TestWindowTrimKeepsLastTradingDays(t *testing.T) {
	var bars []models.Bar
	// Thursday, Friday and Monday sessions
	for _, day := range []time.Time{
		time.Date(2024, time.March, 14, 13, 30, 0, 0, time.UTC),
		time.Date(2024, time.March, 15, 13, 30, 0, 0, time.UTC),
		time.Date(2024, time.March, 18, 13, 30, 0, 0, time.UTC),
	} {
		for h := 0; h < 2; h++ {
			bars = append(bars, models.Bar{Time: day.Add(time.Duration(h) * time.Hour), Open: 100})
		}
	}
	// after the window end
	bars = append(bars, models.Bar{Time: testNow.Add(time.Hour), Open: 100})

	w, err := ParsePeriod("1d", testNow)
	require.NoError(t, err)
	got := w.Trim(bars)
	require.Len(t, got, 2)
	assert.Equal(t, 18, got[0].Time.Day())

	w, err = ParsePeriod("2d", testNow)
	require.NoError(t, err)
	got = w.Trim(bars)
	require.Len(t, got, 4)
	assert.Equal(t, 15, got[0].Time.Day())
	assert.True(t, got[0].Time.Before(got[3].Time))
}

func weekdayBars(days int) []models.Bar {
	var bars []models.Bar
	for d := days; d >= 0; d-- {
		at := time.Date(2024, time.March, 18, 14, 0, 0, 0, time.UTC).AddDate(0, 0, -d)
		if at.Weekday() == time.Saturday || at.Weekday() == time.Sunday {
			continue
		}
		bars = append(bars, models.Bar{Time: at, Open: 100})
	}
	return bars
}

func TestWindowTrimLongDayPeriods(t *testing.T) {
	bars := weekdayBars(120)
	for _, n := range []int{5, 30, 60} {
		w, err := ParsePeriod(strconv.Itoa(n)+"d", testNow)
		require.NoError(t, err)
		assert.Len(t, w.Trim(bars), n, "%dd", n)
	}
}

func TestWindowTrimGroupsByExchangeDate(t *testing.T) {
	// a Sydney session in daylight time runs 23:00 to 05:00 UTC
	sydney := time.FixedZone("AEDT", 11*3600)
	now := time.Date(2024, time.March, 19, 6, 0, 0, 0, time.UTC)
	var bars []models.Bar
	for _, session := range []time.Time{
		time.Date(2024, time.March, 17, 23, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 18, 23, 0, 0, 0, time.UTC),
	} {
		for h := 0; h < 6; h++ {
			bars = append(bars, models.Bar{Time: session.Add(time.Duration(h) * time.Hour).In(sydney), Open: 7.5})
		}
	}

	w, err := ParsePeriod("1d", now)
	require.NoError(t, err)
	got := w.Trim(bars)
	require.Len(t, got, 6)
	assert.True(t, bars[6].Time.Equal(got[0].Time))
}

func TestExchangeLocation(t *testing.T) {
	assert.Equal(t, time.UTC, exchangeLocation(""))
	assert.Equal(t, time.UTC, exchangeLocation("Not/AZone"))
}

func newTestYahoo(fetch func(context.Context, string, datetime.Interval, time.Time, time.Time) ([]models.Bar, error), lookup func(context.Context, string) (*finance.Quote, error)) *YahooMarketData {
	y := NewYahooMarketData(logging.NewTestLogger())
	y.now = func() time.Time { return testNow }
	y.fetch = fetch
	y.lookup = lookup
	return y
}

func TestYahooHistory(t *testing.T) {
	session := time.Date(2024, time.March, 18, 13, 30, 0, 0, time.UTC)
	known := func(context.Context, string) (*finance.Quote, error) { return &finance.Quote{Symbol: "AAPL"}, nil }
	unknown := func(context.Context, string) (*finance.Quote, error) { return nil, nil }

	t.Run("requests hourly bars over the window", func(t *testing.T) {
		y := newTestYahoo(func(_ context.Context, symbol string, interval datetime.Interval, start, end time.Time) ([]models.Bar, error) {
			assert.Equal(t, "AAPL", symbol)
			assert.Equal(t, datetime.OneHour, interval)
			assert.Equal(t, testNow.AddDate(0, 0, -14), start)
			assert.Equal(t, testNow, end)
			return []models.Bar{{Time: session, Open: 172.5}}, nil
		}, known)

		bars, err := y.History(context.Background(), "AAPL", "5d", models.IntervalHourly)
		require.NoError(t, err)
		require.Len(t, bars, 1)
		assert.Equal(t, 172.5, bars[0].Open)
	})

	t.Run("unknown symbol is no data", func(t *testing.T) {
		y := newTestYahoo(func(context.Context, string, datetime.Interval, time.Time, time.Time) ([]models.Bar, error) {
			return nil, errors.New("404 Not Found")
		}, unknown)

		bars, err := y.History(context.Background(), "NOTAREALTICKER", "1d", models.IntervalHourly)
		require.NoError(t, err)
		assert.Empty(t, bars)
	})

	t.Run("not found reply is no data even when the lookup fails", func(t *testing.T) {
		y := newTestYahoo(func(context.Context, string, datetime.Interval, time.Time, time.Time) ([]models.Bar, error) {
			return nil, errors.New("Not Found: No data found, symbol may be delisted")
		}, func(context.Context, string) (*finance.Quote, error) {
			return nil, errors.New("401 Unauthorized")
		})

		bars, err := y.History(context.Background(), "NOTAREALTICKER", "1d", models.IntervalHourly)
		require.NoError(t, err)
		assert.Empty(t, bars)
	})

	t.Run("ambiguous failure falls back to the lookup", func(t *testing.T) {
		y := newTestYahoo(func(context.Context, string, datetime.Interval, time.Time, time.Time) ([]models.Bar, error) {
			return nil, errors.New("unexpected end of JSON input")
		}, unknown)

		bars, err := y.History(context.Background(), "NOTAREALTICKER", "1d", models.IntervalHourly)
		require.NoError(t, err)
		assert.Empty(t, bars)
	})

	t.Run("ambiguous failure with a failed lookup is an error", func(t *testing.T) {
		y := newTestYahoo(func(context.Context, string, datetime.Interval, time.Time, time.Time) ([]models.Bar, error) {
			return nil, errors.New("unexpected end of JSON input")
		}, func(context.Context, string) (*finance.Quote, error) {
			return nil, errors.New("401 Unauthorized")
		})

		_, err := y.History(context.Background(), "AAPL", "1d", models.IntervalHourly)
		assert.Error(t, err)
	})

	t.Run("deadline reaches the fetch", func(t *testing.T) {
		y := newTestYahoo(func(ctx context.Context, _ string, _ datetime.Interval, _, _ time.Time) ([]models.Bar, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return []models.Bar{{Time: session, Open: 1}}, nil
			}
		}, known)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		start := time.Now()
		_, err := y.History(ctx, "AAPL", "1d", models.IntervalHourly)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("fetch failure of a known symbol is an error", func(t *testing.T) {
		y := newTestYahoo(func(context.Context, string, datetime.Interval, time.Time, time.Time) ([]models.Bar, error) {
			return nil, errors.New("connection reset")
		}, known)

		_, err := y.History(context.Background(), "AAPL", "1d", models.IntervalHourly)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("unsupported period never reaches the provider", func(t *testing.T) {
		y := newTestYahoo(func(context.Context, string, datetime.Interval, time.Time, time.Time) ([]models.Bar, error) {
			t.Fatal("unexpected fetch")
			return nil, nil
		}, known)

		_, err := y.History(context.Background(), "AAPL", "3x", models.IntervalHourly)
		assert.ErrorIs(t, err, ErrUnsupportedPeriod)
	})
}

func TestYahooSymbolExists(t *testing.T) {
	y := newTestYahoo(nil, func(_ context.Context, symbol string) (*finance.Quote, error) {
		if symbol == "AAPL" {
			return &finance.Quote{Symbol: symbol}, nil
		}
		return nil, nil
	})

	ok, err := y.SymbolExists(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = y.SymbolExists(context.Background(), "NOTAREALTICKER")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuoteServiceTimeoutBoundsYahooFetch(t *testing.T) {
	y := newTestYahoo(func(ctx context.Context, _ string, _ datetime.Interval, _, _ time.Time) ([]models.Bar, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(500 * time.Millisecond):
			return []models.Bar{{Time: testNow.Add(-time.Hour), Open: 1}}, nil
		}
	}, func(context.Context, string) (*finance.Quote, error) {
		return &finance.Quote{Symbol: "AAPL"}, nil
	})
	svc := NewQuoteService(logging.NewTestLogger(), y, 20*time.Millisecond)

	start := time.Now()
	_, err := svc.Detect(context.Background(), &pb.QuoteRequest{Name: "AAPL", Period: "1d"})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}
