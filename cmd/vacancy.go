package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/example/island-booking/internal/booking"
	"github.com/example/island-booking/internal/calendar"
	"github.com/example/island-booking/internal/config"
	"github.com/example/island-booking/internal/postgres"
	"github.com/spf13/cobra"
)

func newVacancyCmd() *cobra.Command {
	var startDate, endDate string

	c := &cobra.Command{
		Use:   "vacancy",
		Short: "Print the open dates in a window (default: today through one month ahead)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := postgres.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			policy := booking.Policy{
				MinDaysAhead:       cfg.MinDaysAhead,
				MaxConsecutiveDays: cfg.MaxConsecutiveDays,
				MaxDaysAhead:       cfg.MaxDaysAhead,
			}
			svc := booking.NewService(postgres.NewReservationRepo(pool), policy, booking.UTCClock{})

			windowStart, windowEnd, err := parseWindow(startDate, endDate)
			if err != nil {
				return err
			}
			dates, err := svc.Vacancy(ctx, windowStart, windowEnd)
			if err != nil {
				return err
			}
			for _, d := range dates {
				fmt.Println(calendar.Format(d))
			}
			return nil
		},
	}

	c.Flags().StringVar(&startDate, "start", "", "window start (2006-01-02)")
	c.Flags().StringVar(&endDate, "end", "", "window end, inclusive (2006-01-02)")
	return c
}

func parseWindow(start, end string) (time.Time, time.Time, error) {
	var s, e time.Time
	var err error
	if start != "" {
		if s, err = calendar.Parse(start); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
		}
	}
	if end != "" {
		if e, err = calendar.Parse(end); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
		}
	}
	return s, e, nil
}
