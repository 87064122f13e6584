package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"chartrisk/internal/models"
	"chartrisk/internal/risk"
)

var (
	riskAccount    float64
	riskLeverage   float64
	riskPercent    float64
	riskEntry      float64
	riskStop       float64
	riskTakeProfit float64
	riskAsset      string
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Compute position sizing and risk metrics for a leveraged trade",
	Long: `Risk derives position size, stop and reward distances, risk-reward ratio
and a risk-compliance verdict from account size, leverage, risk percent and
the entry/stop/take-profit prices.

With --asset, the live price seeds any entry, stop and take-profit values not
given explicitly (stop at 1% below entry, take-profit at 3% above). If the
quote fails the command falls back to the explicit flag values and says so; a
stale price is never substituted silently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		entry := riskEntry
		stop := riskStop
		takeProfit := riskTakeProfit
		takeProfitSet := cmd.Flags().Changed("take-profit")

		if riskAsset != "" {
			resolver, err := newResolver(cfg)
			if err != nil {
				return err
			}

			q := resolver.Resolve(cmd.Context(), riskAsset)
			if q.Error != "" {
				log.Warn().
					Str("asset", riskAsset).
					Str("reason", q.Error).
					Msg("Live price not available, enter prices manually")
			} else {
				fmt.Printf("Live price for %s: %.2f\n", riskAsset, *q.Price)
				if !cmd.Flags().Changed("entry") {
					entry = *q.Price
				}
				if !cmd.Flags().Changed("stop") {
					stop = entry * 0.99
				}
				if !takeProfitSet {
					takeProfit = entry * 1.03
					takeProfitSet = true
				}
			}
		}

		params := models.TradeParameters{
			AccountSize:   riskAccount,
			Leverage:      riskLeverage,
			RiskPercent:   riskPercent,
			EntryPrice:    entry,
			StopLossPrice: stop,
		}
		if takeProfitSet {
			params.TakeProfitPrice = &takeProfit
		}

		assessment, err := risk.Calculate(params)
		if err != nil {
			return err
		}

		printAssessment(params, assessment)
		return nil
	},
}

func printAssessment(p models.TradeParameters, a *models.RiskAssessment) {
	fmt.Println("Trade Summary")
	fmt.Printf("  Account Size:         %.2f\n", p.AccountSize)
	fmt.Printf("  Leverage:             %.2f\n", p.Leverage)
	fmt.Printf("  Risk %% of Account:    %.2f\n", p.RiskPercent)
	fmt.Printf("  Risk Amount:          %.2f\n", a.RiskAmount)
	fmt.Printf("  Entry Price:          %.4f\n", p.EntryPrice)
	fmt.Printf("  Stop-Loss Price:      %.4f\n", p.StopLossPrice)
	if p.TakeProfitPrice != nil {
		fmt.Printf("  Take-Profit Price:    %.4f\n", *p.TakeProfitPrice)
	}
	fmt.Printf("  Position Size:        %.2f\n", a.PositionSize)
	fmt.Printf("  Stop-Loss Distance:   %.4f\n", a.StopLossDistance)
	fmt.Printf("  Stop-Loss %%:          %.4f\n", a.StopLossPct)
	fmt.Printf("  Max Allowed SL %%:     %.4f\n", a.MaxAllowedStopPct)
	fmt.Printf("  Expected Loss if SL:  %.2f\n", a.ExpectedLossIfHit)
	if a.TakeProfitDistance != nil {
		fmt.Printf("  Take-Profit Distance: %.4f\n", *a.TakeProfitDistance)
	}
	if a.PotentialReward != nil {
		fmt.Printf("  Expected Reward:      %.2f\n", *a.PotentialReward)
	}
	if a.RiskRewardRatio != nil {
		fmt.Printf("  Risk-Reward Ratio:    %.2f\n", *a.RiskRewardRatio)
	} else if a.PotentialReward != nil {
		fmt.Printf("  Risk-Reward Ratio:    N/A\n")
	}
	fmt.Printf("  Within Risk:          %t\n", a.WithinRisk)
}

func init() {
	riskCmd.Flags().Float64Var(&riskAccount, "account", 500, "account size")
	riskCmd.Flags().Float64Var(&riskLeverage, "leverage", 10, "leverage multiplier")
	riskCmd.Flags().Float64Var(&riskPercent, "risk-pct", 1, "risk percent of account, 0-100")
	riskCmd.Flags().Float64Var(&riskEntry, "entry", 0, "entry price")
	riskCmd.Flags().Float64Var(&riskStop, "stop", 0, "stop-loss price")
	riskCmd.Flags().Float64Var(&riskTakeProfit, "take-profit", 0, "take-profit price (optional)")
	riskCmd.Flags().StringVar(&riskAsset, "asset", "", "catalog asset used to seed prices from a live quote")
	rootCmd.AddCommand(riskCmd)
}
