package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartrisk/internal/quote"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the quotable asset catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		catalog := quote.DefaultCatalog()
		if cfg.CatalogPath != "" {
			catalog, err = quote.LoadCatalog(cfg.CatalogPath)
			if err != nil {
				return err
			}
		}

		for _, name := range catalog.Names() {
			asset, _ := catalog.Lookup(name)
			fmt.Printf("%-20s %s\n", asset.Category, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}
