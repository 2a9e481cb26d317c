package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pricesense/backend/app/alerts"
	"github.com/pricesense/backend/app/api"
	"github.com/pricesense/backend/app/jobs"
	"github.com/pricesense/backend/app/pricing"
	"github.com/pricesense/backend/app/products"
	"github.com/pricesense/backend/internal/config"
	"github.com/pricesense/backend/internal/database"
	"github.com/pricesense/backend/models"
	"github.com/pricesense/backend/pkg/logx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  "Starts the API server and blocks until SIGINT/SIGTERM",
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

		productsRepo := models.NewProductsRepository(db)
		alertsRepo := models.NewAlertsRepository(db)
		fetcher := pricing.NewService(productsRepo, alertsRepo)

		router := api.NewRouter(api.Handlers{
			Products: products.NewProductsHandler(productsRepo),
			Alerts:   alerts.NewAlertsHandler(alertsRepo),
			Jobs:     jobs.NewJobsHandler(fetcher),
		}, cfg.AllowOrigins)

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logx.Info().Str("addr", cfg.Addr()).Msg("server started")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		logx.Info().Msg("shutdown signal received")

		// Stop accepting new requests, allow 15s to finish in-flight ones.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logx.Error().Err(err).Msg("server shutdown")
		}

		logx.Info().Msg("graceful shutdown complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
