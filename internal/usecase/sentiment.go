package usecase

import (
	"context"
	"math/rand/v2"

	"StockScope/internal/domain/models"
	dsvc "StockScope/internal/domain/service"
)

// RandomSentimentEstimator is the placeholder signal source: a uniform
// prediction with confidence drawn from [50, 90). It reads nothing from
// the price path, so swapping in a real model touches only this type.
type RandomSentimentEstimator struct{}

// NewRandomSentimentEstimator creates the placeholder estimator.
func NewRandomSentimentEstimator() *RandomSentimentEstimator {
	return &RandomSentimentEstimator{}
}

var predictions = []string{
	models.SentimentBullish,
	models.SentimentNeutral,
	models.SentimentBearish,
}

func (e *RandomSentimentEstimator) Estimate(_ context.Context, _ string) (models.SentimentEstimate, error) {
	return models.SentimentEstimate{
		OverallPrediction: predictions[rand.IntN(len(predictions))],
		Confidence:        50 + rand.IntN(40),
	}, nil
}

var _ dsvc.SentimentEstimator = (*RandomSentimentEstimator)(nil)
