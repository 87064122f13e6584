// Package analyze turns extracted chart levels into a trade verdict.
package analyze

import (
	"strconv"

	"chartrisk/internal/models"
)

// Retracement zones checked against each extracted level. The thresholds
// apply to the raw numbers, so the classifier assumes recognition already
// produced ratio-range values; absolute chart prices fall through every
// zone. Known limitation, kept to match the reference behavior.
const (
	fibZoneLow  = 0.5
	fibZoneHigh = 0.618

	nearHalfLow  = 0.48
	nearHalfHigh = 0.52

	nearGoldenLow  = 0.6
	nearGoldenHigh = 0.63
)

// Classify evaluates every level against all three zones. The rules are
// independent: none short-circuits the others, and only the primary fib zone
// flips the decision to Go.
func Classify(levels []float64) models.TradeVerdict {
	verdict := models.TradeVerdict{Decision: models.DecisionNoGo}

	for _, level := range levels {
		if level >= fibZoneLow && level <= fibZoneHigh {
			verdict.Decision = models.DecisionGo
			verdict.Reasons = append(verdict.Reasons, "Fib zone detected: "+formatLevel(level))
		}
		if level >= nearHalfLow && level <= nearHalfHigh {
			verdict.Reasons = append(verdict.Reasons, "Near 50% Fib: "+formatLevel(level))
		}
		if level >= nearGoldenLow && level <= nearGoldenHigh {
			verdict.Reasons = append(verdict.Reasons, "Near 61.8% Fib: "+formatLevel(level))
		}
	}

	if len(verdict.Reasons) == 0 {
		verdict.Reasons = []string{"No valid fib zone found"}
	}
	return verdict
}

// formatLevel renders a level with its shortest exact decimal form, so a
// reason reads "0.5" rather than "0.500000".
func formatLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
