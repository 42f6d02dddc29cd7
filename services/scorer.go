package services

import (
	"context"
	"fmt"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

//go:generate go run go.uber.org/mock/mockgen -destination mocks/scorer_mock.go -package mocks watchdog_gateway/services Scorer

// Scorer turns a piece of text into a polarity in [-1, 1].
type Scorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// VaderScorer scores text with the VADER lexicon. The compound score is
// already normalised into [-1, 1].
type VaderScorer struct{}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{}
}

func (v *VaderScorer) Polarity(ctx context.Context, text string) (score float64, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sentiment scorer panicked: %v", r)
		}
	}()

	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound, nil
}
