package models

// Trend metric types, emitted in this fixed order.
const (
	TrendSevenDayAverage  = "7-day average"
	TrendThirtyDayAverage = "30-day average"
	TrendSevenDayVolume   = "average 7-day volume"
)

// Recommendation actions.
const (
	ActionBuy  = "Buy"
	ActionHold = "Hold"
)

// Sentiment predictions.
const (
	SentimentBullish = "Bullish"
	SentimentNeutral = "Neutral"
	SentimentBearish = "Bearish"
)

// TrendMetric is one derived numeric summary, formatted for display.
type TrendMetric struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Recommendation is the momentum-based buy/hold call.
type Recommendation struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// SentimentEstimate is a probabilistic market-mood signal, independent
// of the price-derived metrics.
type SentimentEstimate struct {
	OverallPrediction string `json:"overall_prediction"`
	Confidence        int    `json:"confidence"`
}

// NeutralSentiment is the fallback when the estimator fails.
func NeutralSentiment() SentimentEstimate {
	return SentimentEstimate{OverallPrediction: SentimentNeutral, Confidence: 50}
}

// InsightsResult is the per-request derived analytics payload. It is
// stateless and recomputed on every request.
type InsightsResult struct {
	Symbol         string            `json:"symbol"`
	Trends         []TrendMetric     `json:"trends"`
	Recommendation *Recommendation   `json:"recommendation,omitempty"`
	Sentiment      SentimentEstimate `json:"sentiment"`
}
