package models

// Category identifies which market a catalog asset trades in and therefore
// which quote source serves it.
type Category string

const (
	CategoryCrypto    Category = "crypto"
	CategoryEquity    Category = "equity"
	CategoryCommodity Category = "commodity"
)

// Decision is the binary outcome of a chart evaluation.
type Decision string

const (
	DecisionGo   Decision = "Go"
	DecisionNoGo Decision = "No Go"
)

// TradeVerdict is the result of classifying extracted chart levels.
// Reasons is never empty: when no zone matches it carries a single
// explanatory default.
type TradeVerdict struct {
	Decision Decision `json:"decision"`
	Reasons  []string `json:"reasons"`
}

// AssetQuote is the outcome of a single quote resolution. Exactly one of
// Price and Error is populated; a provider failure never escapes as a raw
// error past the resolver.
type AssetQuote struct {
	Asset    string   `json:"asset"`
	Category Category `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// TradeParameters are the inputs to the leverage risk calculator.
// TakeProfitPrice is optional; leaving it nil suppresses the reward block of
// the assessment.
type TradeParameters struct {
	AccountSize     float64  `json:"account_size"`
	Leverage        float64  `json:"leverage"`
	RiskPercent     float64  `json:"risk_percent"`
	EntryPrice      float64  `json:"entry_price"`
	StopLossPrice   float64  `json:"stop_loss_price"`
	TakeProfitPrice *float64 `json:"take_profit_price,omitempty"`
}

// RiskAssessment holds all derived risk metrics for one trade setup.
// The take-profit fields are present only when TakeProfitPrice was supplied;
// RiskRewardRatio is additionally absent when the expected loss is zero.
type RiskAssessment struct {
	PositionSize       float64  `json:"position_size"`
	RiskAmount         float64  `json:"risk_amount"`
	StopLossDistance   float64  `json:"stop_loss_distance"`
	StopLossPct        float64  `json:"stop_loss_pct"`
	MaxAllowedStopPct  float64  `json:"max_allowed_stop_pct"`
	ExpectedLossIfHit  float64  `json:"expected_loss_if_hit"`
	WithinRisk         bool     `json:"within_risk"`
	TakeProfitDistance *float64 `json:"take_profit_distance,omitempty"`
	PotentialReward    *float64 `json:"potential_reward,omitempty"`
	RiskRewardRatio    *float64 `json:"risk_reward_ratio,omitempty"`
}
