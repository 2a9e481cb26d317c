package cli

import (
	"github.com/spf13/cobra"

	"github.com/pricesense/backend/internal/config"
	"github.com/pricesense/backend/internal/database"
	"github.com/pricesense/backend/pkg/logx"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  "Creates or updates tables for products, price records, and alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logx.Init(cfg.Environment)

		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		logx.Info().Msg("schema up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
