package line

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jekabolt/sales-digest/internal/dto"
	"github.com/jekabolt/sales-digest/internal/entity"
	gerr "github.com/jekabolt/sales-digest/internal/errors"
)

const pushAPIURL = "https://api.line.me/v2/bot/message/push"

type Config struct {
	ChannelToken string        `mapstructure:"channel_token" valid:"required"`
	Recipients   string        `mapstructure:"recipients" valid:"required"` // comma separated user ids
	PushURL      string        `mapstructure:"push_url"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
}

// Client pushes text messages through the LINE Messaging API.
type Client struct {
	c   *Config
	cli *resty.Client
}

func New(c *Config) *Client {
	cli := resty.New()
	cli.SetAuthToken(c.ChannelToken)
	cli.SetHeader("Content-Type", "application/json")
	if c.HTTPTimeout > 0 {
		cli.SetTimeout(c.HTTPTimeout)
	}
	return &Client{
		c:   c,
		cli: cli,
	}
}

// ParseRecipients splits a comma separated id list, dropping blanks.
func ParseRecipients(csv string) []string {
	var ids []string
	for _, id := range strings.Split(csv, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Push sends message to each recipient in turn. A failed recipient is
// logged and recorded in its Delivery; the remaining ones are still tried.
func (c *Client) Push(ctx context.Context, recipients []string, message string) []entity.Delivery {
	deliveries := make([]entity.Delivery, 0, len(recipients))
	for _, to := range recipients {
		deliveries = append(deliveries, c.push(ctx, to, message))
	}
	return deliveries
}

func (c *Client) push(ctx context.Context, to, message string) entity.Delivery {
	d := entity.Delivery{Recipient: to}

	resp, err := c.cli.R().
		SetContext(ctx).
		SetBody(dto.NewLineTextPush(to, message)).
		Post(c.pushURL())
	if err != nil {
		d.Err = fmt.Errorf("%w: line push to %s: %w", gerr.ErrUpstream, to, err)
		slog.Default().ErrorContext(ctx, "can't push line message",
			slog.String("recipient", to),
			slog.String("err", err.Error()))
		return d
	}

	d.StatusCode = resp.StatusCode()
	d.Body = resp.String()
	if !resp.IsSuccess() {
		d.Err = fmt.Errorf("%w: line push to %s returned %d: %s", gerr.ErrUpstream, to, d.StatusCode, d.Body)
		slog.Default().ErrorContext(ctx, "line push rejected",
			slog.String("recipient", to),
			slog.Int("status", d.StatusCode),
			slog.String("body", d.Body))
		return d
	}

	slog.Default().InfoContext(ctx, "line push sent",
		slog.String("recipient", to),
		slog.Int("status", d.StatusCode),
		slog.String("body", d.Body))
	return d
}

func (c *Client) pushURL() string {
	if c.c.PushURL != "" {
		return c.c.PushURL
	}
	return pushAPIURL
}
