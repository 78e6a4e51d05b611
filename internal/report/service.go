package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/sales-digest/internal/dependency"
	"github.com/jekabolt/sales-digest/internal/entity"
	gerr "github.com/jekabolt/sales-digest/internal/errors"
)

// Config holds report presentation settings.
type Config struct {
	Title string `mapstructure:"title"`
}

// Service builds the daily digest and hands it to the notifier.
type Service struct {
	c        *Config
	sessions dependency.Sessions
	orders   dependency.Orders
	notifier dependency.Notifier
}

// New creates a report service. notifier may be nil when only Message is used.
func New(c *Config, sessions dependency.Sessions, orders dependency.Orders, notifier dependency.Notifier) *Service {
	if c == nil {
		c = &Config{}
	}
	return &Service{
		c:        c,
		sessions: sessions,
		orders:   orders,
		notifier: notifier,
	}
}

// Build fetches sessions and orders for the day and month-to-date windows
// derived from now and computes the report. Calls are made strictly in the
// order day sessions, month sessions, day orders, month orders.
func (s *Service) Build(ctx context.Context, now time.Time) (*entity.Report, error) {
	reportDate, day, month := entity.ReportWindows(now)

	daySessions, err := s.sessions.GetSessions(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("can't get day sessions: %w", err)
	}
	monthSessions, err := s.sessions.GetSessions(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("can't get month sessions: %w", err)
	}

	dayOrders, err := s.orders.FetchOrders(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("can't get day orders: %w", err)
	}
	monthOrders, err := s.orders.FetchOrders(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("can't get month orders: %w", err)
	}

	r := &entity.Report{
		ReportDate: reportDate,
		Month:      windowMetrics(month, monthOrders, monthSessions),
		Day:        windowMetrics(day, dayOrders, daySessions),
		Ranking:    RankProducts(dayOrders.Orders),
	}

	slog.Default().InfoContext(ctx, "report built",
		slog.String("report_date", reportDate.Format(entity.DateLayout)),
		slog.Int64("day_sales", r.Day.Sales),
		slog.Int("day_orders", r.Day.OrderCount),
		slog.Int64("month_sales", r.Month.Sales),
		slog.Int("month_orders", r.Month.OrderCount),
	)
	return r, nil
}

// Message builds the report and renders it as text.
func (s *Service) Message(ctx context.Context, now time.Time) (string, error) {
	r, err := s.Build(ctx, now)
	if err != nil {
		return "", err
	}
	return Format(s.c.Title, r), nil
}

// Run builds the digest and pushes it to every recipient. Per-recipient
// failures are logged and returned in the deliveries, not as an error.
func (s *Service) Run(ctx context.Context, now time.Time, recipients []string) ([]entity.Delivery, error) {
	if s.notifier == nil {
		return nil, fmt.Errorf("%w: notifier is not configured", gerr.ErrMissingConfig)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: no recipients", gerr.ErrMissingConfig)
	}

	msg, err := s.Message(ctx, now)
	if err != nil {
		return nil, err
	}

	deliveries := s.notifier.Push(ctx, recipients, msg)

	failed := 0
	for _, d := range deliveries {
		if !d.OK() {
			failed++
		}
	}
	if failed > 0 {
		slog.Default().WarnContext(ctx, "digest not delivered to every recipient",
			slog.Int("failed", failed),
			slog.Int("total", len(deliveries)))
	} else {
		slog.Default().InfoContext(ctx, "digest delivered",
			slog.Int("total", len(deliveries)))
	}
	return deliveries, nil
}
