// Package risk computes position sizing and risk metrics for a single
// leveraged trade.
package risk

import (
	"errors"
	"fmt"
	"math"

	"chartrisk/internal/models"
)

var (
	// ErrInvalidEntryPrice reports an entry price the percentage math cannot
	// be built on.
	ErrInvalidEntryPrice = errors.New("entry price must be greater than zero")

	// ErrInvalidTradeParameters reports account size, leverage or risk
	// percent outside their valid ranges.
	ErrInvalidTradeParameters = errors.New("invalid trade parameters")
)

// Calculate derives the full risk assessment for one trade setup. It is a
// pure function: the result is fully determined by the parameters, with no
// I/O. Parameter errors are returned as structured errors, never as an
// arithmetic fault.
func Calculate(p models.TradeParameters) (*models.RiskAssessment, error) {
	if p.AccountSize <= 0 {
		return nil, fmt.Errorf("%w: account size must be positive, got %v", ErrInvalidTradeParameters, p.AccountSize)
	}
	if p.Leverage <= 0 {
		return nil, fmt.Errorf("%w: leverage must be positive, got %v", ErrInvalidTradeParameters, p.Leverage)
	}
	if p.RiskPercent < 0 || p.RiskPercent > 100 {
		return nil, fmt.Errorf("%w: risk percent must be within [0,100], got %v", ErrInvalidTradeParameters, p.RiskPercent)
	}
	if p.EntryPrice <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidEntryPrice, p.EntryPrice)
	}

	positionSize := p.AccountSize * p.Leverage
	riskAmount := p.AccountSize * (p.RiskPercent / 100)

	stopDistance := math.Abs(p.EntryPrice - p.StopLossPrice)
	stopPct := (stopDistance / p.EntryPrice) * 100
	maxStopPct := (riskAmount / positionSize) * 100
	expectedLoss := positionSize * (stopPct / 100)

	assessment := &models.RiskAssessment{
		PositionSize:      positionSize,
		RiskAmount:        riskAmount,
		StopLossDistance:  stopDistance,
		StopLossPct:       stopPct,
		MaxAllowedStopPct: maxStopPct,
		ExpectedLossIfHit: expectedLoss,
		WithinRisk:        stopPct <= maxStopPct,
	}

	if p.TakeProfitPrice != nil {
		tpDistance := math.Abs(*p.TakeProfitPrice - p.EntryPrice)
		reward := positionSize * (tpDistance / p.EntryPrice)
		assessment.TakeProfitDistance = &tpDistance
		assessment.PotentialReward = &reward

		// Undefined when the stop sits on the entry; reported as absent
		// rather than +Inf.
		if expectedLoss != 0 {
			ratio := reward / expectedLoss
			assessment.RiskRewardRatio = &ratio
		}
	}

	return assessment, nil
}
