package ga4

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jekabolt/sales-digest/internal/entity"
	gerr "github.com/jekabolt/sales-digest/internal/errors"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

// Config holds GA4 client configuration.
type Config struct {
	PropertyID      string `mapstructure:"property_id" valid:"required"`
	CredentialsJSON string `mapstructure:"credentials_json" valid:"required"` // path to service account JSON file, or raw JSON (for env vars)
}

// Client wraps the GA4 Data API client.
type Client struct {
	service    *analyticsdata.Service
	propertyID string
}

// NewClient creates a new GA4 client. Extra options are appended after the
// credentials derived from cfg.
func NewClient(ctx context.Context, cfg *Config, extra ...option.ClientOption) (*Client, error) {
	if cfg == nil || cfg.PropertyID == "" {
		return nil, fmt.Errorf("%w: ga4 property_id is required", gerr.ErrMissingConfig)
	}

	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		jsonBytes := []byte(cfg.CredentialsJSON)
		if jsonBytes[0] == '{' {
			opts = append(opts, option.WithCredentialsJSON(jsonBytes))
		} else {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsJSON))
		}
	}
	opts = append(opts, extra...)

	service, err := analyticsdata.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GA4 service: %w", err)
	}

	slog.Default().InfoContext(ctx, "GA4 analytics client initialized",
		slog.String("property_id", cfg.PropertyID))

	return &Client{
		service:    service,
		propertyID: cfg.PropertyID,
	}, nil
}

// GetSessions returns the total sessions for the inclusive date range.
// GA4 returns no rows for a range without traffic, which counts as zero.
func (c *Client) GetSessions(ctx context.Context, dr entity.DateRange) (int, error) {
	if err := dr.Validate(); err != nil {
		return 0, err
	}

	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{
				StartDate: dr.From.Format(entity.DateLayout),
				EndDate:   dr.To.Format(entity.DateLayout),
			},
		},
		Metrics: []*analyticsdata.Metric{
			{Name: "sessions"},
		},
	}

	resp, err := c.service.Properties.RunReport(fmt.Sprintf("properties/%s", c.propertyID), req).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to run GA4 sessions report: %w", gerr.ErrUpstream, err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].MetricValues) == 0 {
		slog.Default().WarnContext(ctx, "GA4 sessions report returned no rows",
			slog.String("start_date", req.DateRanges[0].StartDate),
			slog.String("end_date", req.DateRanges[0].EndDate))
		return 0, nil
	}

	value := resp.Rows[0].MetricValues[0].Value
	sessions, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: GA4 sessions value %q: %v", gerr.ErrDecode, value, err)
	}
	return sessions, nil
}
