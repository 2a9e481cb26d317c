package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pricesense",
	Short: "PriceSense backend API",
	Long:  "Backend service for product tracking, price history, and alerts",
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
