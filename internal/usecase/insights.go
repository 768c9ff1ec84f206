package usecase

import (
	"context"
	"fmt"
	"math"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	dsvc "StockScope/internal/domain/service"
	applogger "StockScope/pkg/logger"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"
)

const (
	recentWindow    = 30
	shortWindow     = 7
	momentumWindow  = 10
	gainHoldPercent = 5.0
	lossBuyPercent  = 8.0
)

// DeriveInsights computes trend metrics and a momentum recommendation
// from a daily bar series. It is a pure function: an empty or short
// series narrows the output, it never errors.
//
// Metrics are emitted in fixed order (7-day average, 30-day average,
// average volume); any metric whose window is unmet is omitted, never
// replaced by a placeholder.
func DeriveInsights(series models.HistorySeries) ([]models.TrendMetric, *models.Recommendation) {
	recent := series
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	trends := make([]models.TrendMetric, 0, 3)

	if len(recent) >= shortWindow {
		avg7 := stat.Mean(closes(recent[len(recent)-shortWindow:]), nil)
		trends = append(trends, models.TrendMetric{
			Type:  models.TrendSevenDayAverage,
			Value: fmt.Sprintf("%.2f", avg7),
		})
	}

	// The 30-day average is never computed over a shorter window.
	if len(recent) >= recentWindow {
		avg30 := stat.Mean(closes(recent), nil)
		trends = append(trends, models.TrendMetric{
			Type:  models.TrendThirtyDayAverage,
			Value: fmt.Sprintf("%.2f", avg30),
		})
	}

	if len(recent) >= shortWindow {
		var sum float64
		for _, bar := range recent[len(recent)-shortWindow:] {
			sum += float64(bar.Volume)
		}
		avgVolume := int64(math.Round(sum / shortWindow))
		trends = append(trends, models.TrendMetric{
			Type:  models.TrendSevenDayVolume,
			Value: humanize.Comma(avgVolume),
		})
	}

	return trends, deriveRecommendation(recent)
}

func deriveRecommendation(recent models.HistorySeries) *models.Recommendation {
	if len(recent) < momentumWindow {
		return nil
	}

	latest := recent[len(recent)-1].Close
	earlier := recent[len(recent)-momentumWindow].Close

	if latest > earlier {
		percentGain := (latest - earlier) / earlier * 100
		action := models.ActionBuy
		if percentGain > gainHoldPercent {
			action = models.ActionHold
		}
		return &models.Recommendation{
			Action: action,
			Reason: fmt.Sprintf("Stock has gained %.2f%% in the last 10 trading days.", percentGain),
		}
	}

	// A flat price lands here with a 0.00% loss, yielding Hold.
	percentLoss := (earlier - latest) / earlier * 100
	action := models.ActionHold
	if percentLoss > lossBuyPercent {
		action = models.ActionBuy
	}
	return &models.Recommendation{
		Action: action,
		Reason: fmt.Sprintf("Stock has lost %.2f%% in the last 10 trading days.", percentLoss),
	}
}

func closes(bars models.HistorySeries) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// InsightService assembles the insights payload: gateway history in,
// engine + sentiment out.
type InsightService struct {
	gateway   *MarketDataGateway
	estimator dsvc.SentimentEstimator
	logger    *applogger.Logger
}

// NewInsightService creates an insight service.
func NewInsightService(gateway *MarketDataGateway, estimator dsvc.SentimentEstimator, l *applogger.Logger) *InsightService {
	return &InsightService{gateway: gateway, estimator: estimator, logger: l}
}

// Insights derives the full per-symbol insights payload. A symbol with
// no retrievable history is a not-found outcome, decided here before
// the engine runs.
func (s *InsightService) Insights(ctx context.Context, symbol string) (*models.InsightsResult, error) {
	series, err := s.gateway.History(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no historical data for %s: %w", symbol, drepo.ErrNotFound)
	}

	trends, recommendation := DeriveInsights(series)

	return &models.InsightsResult{
		Symbol:         symbol,
		Trends:         trends,
		Recommendation: recommendation,
		Sentiment:      s.safeSentiment(ctx, symbol),
	}, nil
}

// safeSentiment shields the request from estimator faults: any error or
// panic substitutes the neutral estimate.
func (s *InsightService) safeSentiment(ctx context.Context, symbol string) (out models.SentimentEstimate) {
	out = models.NeutralSentiment()
	defer func() {
		if r := recover(); r != nil {
			out = models.NeutralSentiment()
			if s.logger != nil {
				s.logger.Error("sentiment estimator panic", applogger.Any("panic", r))
			}
		}
	}()

	est, err := s.estimator.Estimate(ctx, symbol)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("sentiment estimator failed", applogger.Error(err))
		}
		return models.NeutralSentiment()
	}
	return est
}
