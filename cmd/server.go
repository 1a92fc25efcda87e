package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/island-booking/internal/booking"
	"github.com/example/island-booking/internal/config"
	"github.com/example/island-booking/internal/memstore"
	"github.com/example/island-booking/internal/postgres"
	"github.com/example/island-booking/internal/web"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServerCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the booking HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetFormatter(&logrus.JSONFormatter{})

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			var ledger booking.Ledger
			if cfg.DevMode {
				logger.Warn("dev mode: reservations held in memory only")
				ledger = memstore.New()
			} else {
				pool, err := postgres.Open(ctx, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer pool.Close()

				if err := postgres.Ping(ctx, pool); err != nil {
					return fmt.Errorf("db ping: %w", err)
				}
				if migrateUp {
					if err := postgres.Migrate(ctx, pool); err != nil {
						return err
					}
				}
				ledger = postgres.NewReservationRepo(pool)
			}

			policy := booking.Policy{
				MinDaysAhead:       cfg.MinDaysAhead,
				MaxConsecutiveDays: cfg.MaxConsecutiveDays,
				MaxDaysAhead:       cfg.MaxDaysAhead,
			}
			svc := booking.NewService(ledger, policy, booking.UTCClock{})

			srv := web.New(svc, logger)
			return web.Start(ctx, cfg.ListenAddr, srv.Routes(), logger)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}
