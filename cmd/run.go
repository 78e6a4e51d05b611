package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jekabolt/sales-digest/config"
	"github.com/jekabolt/sales-digest/internal/analytics/ga4"
	"github.com/jekabolt/sales-digest/internal/entity"
	"github.com/jekabolt/sales-digest/internal/line"
	"github.com/jekabolt/sales-digest/internal/report"
	"github.com/jekabolt/sales-digest/internal/shopify"
	"github.com/jekabolt/sales-digest/log"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}

	logger := log.New(cfg.Logger, os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.InfoContext(ctx, "sales digest started",
		slog.String("started_at", time.Now().In(entity.JST).Format("2006-01-02 15:04:05")),
		slog.Bool("dry_run", dryRun),
	)

	if err := cfg.Validate(); err != nil {
		return err
	}

	now, err := parseReportDate(reportDate)
	if err != nil {
		return err
	}

	sessions, err := ga4.NewClient(ctx, &cfg.GA4)
	if err != nil {
		return fmt.Errorf("cannot create ga4 client: %w", err)
	}
	orders := shopify.New(&cfg.Shopify)

	if dryRun {
		svc := report.New(&cfg.Report, sessions, orders, nil)
		msg, err := svc.Message(ctx, now)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	svc := report.New(&cfg.Report, sessions, orders, line.New(&cfg.Line))
	deliveries, err := svc.Run(ctx, now, line.ParseRecipients(cfg.Line.Recipients))
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "sales digest finished", slog.Int("total", len(deliveries)))
	return nil
}

// parseReportDate returns the moment the digest is built for. An empty value
// means now.
func parseReportDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(entity.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", s, err)
	}
	return t, nil
}
