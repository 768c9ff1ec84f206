package service

import (
	"context"

	"StockScope/internal/domain/models"
)

// SentimentEstimator produces a market-mood estimate for a symbol. It is
// deliberately narrow so the placeholder implementation can be swapped
// for a real model or API without touching the insight engine.
type SentimentEstimator interface {
	Estimate(ctx context.Context, symbol string) (models.SentimentEstimate, error)
}
