package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <asset>",
	Short: "Fetch the live price for a catalog asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		resolver, err := newResolver(cfg)
		if err != nil {
			return err
		}

		q := resolver.Resolve(cmd.Context(), args[0])
		if q.Error != "" {
			// A failed quote is a warning, not a session-ending error.
			fmt.Printf("Live price for %s not available: %s\n", q.Asset, q.Error)
			return nil
		}

		fmt.Printf("%s (%s): %.2f\n", q.Asset, q.Category, *q.Price)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
