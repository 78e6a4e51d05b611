package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jekabolt/sales-digest/internal/dto"
	"github.com/jekabolt/sales-digest/internal/entity"
	gerr "github.com/jekabolt/sales-digest/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultAPIVersion = "2023-10"

	// PageLimit is the maximum page size Shopify accepts for orders.json.
	PageLimit = 250

	accessTokenHeader = "X-Shopify-Access-Token"
	tzOffset          = "+09:00"
)

type Config struct {
	ShopName    string        `mapstructure:"shop_name" valid:"required"`
	AccessToken string        `mapstructure:"access_token" valid:"required"`
	APIVersion  string        `mapstructure:"api_version"`
	BaseURL     string        `mapstructure:"base_url"` // defaults to https://{shop_name}.myshopify.com
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Client fetches orders from the Shopify Admin REST API.
type Client struct {
	c   *Config
	cli *resty.Client
}

func New(c *Config) *Client {
	cli := resty.New()
	cli.SetBaseURL(baseURL(c))
	cli.SetHeader(accessTokenHeader, c.AccessToken)
	cli.SetHeader("Content-Type", "application/json")
	if c.HTTPTimeout > 0 {
		cli.SetTimeout(c.HTTPTimeout)
	}
	return &Client{
		c:   c,
		cli: cli,
	}
}

func baseURL(c *Config) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s.myshopify.com", c.ShopName)
}

func (c *Client) ordersPath() string {
	version := c.c.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	return fmt.Sprintf("/admin/api/%s/orders.json", version)
}

// FetchOrders retrieves every order created within the inclusive date range,
// following Link rel="next" cursors until none is left. Any failed page
// aborts the whole fetch.
func (c *Client) FetchOrders(ctx context.Context, dr entity.DateRange) (*entity.OrderBatch, error) {
	if err := dr.Validate(); err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0)
	total := decimal.Zero

	next := c.ordersPath()
	for page := 1; next != ""; page++ {
		req := c.cli.R().SetContext(ctx)
		if page == 1 {
			// cursor URLs already carry their own query
			req.SetQueryParams(map[string]string{
				"status":         "any",
				"created_at_min": dr.From.Format(entity.DateLayout) + "T00:00:00" + tzOffset,
				"created_at_max": dr.To.Format(entity.DateLayout) + "T23:59:59" + tzOffset,
				"limit":          strconv.Itoa(PageLimit),
			})
		}

		resp, err := req.Get(next)
		if err != nil {
			return nil, fmt.Errorf("%w: can't get shopify orders page %d: %w", gerr.ErrUpstream, page, err)
		}
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("%w: shopify orders page %d returned %d: %s", gerr.ErrUpstream, page, resp.StatusCode(), resp.String())
		}

		var res dto.ShopifyOrdersResponse
		if err := json.Unmarshal(resp.Body(), &res); err != nil {
			return nil, fmt.Errorf("%w: can't unmarshal shopify orders page %d: %v", gerr.ErrDecode, page, err)
		}
		pageOrders, err := dto.ConvertShopifyOrdersToEntity(res.Orders)
		if err != nil {
			return nil, err
		}
		for _, o := range pageOrders {
			total = total.Add(o.TotalPrice)
		}
		orders = append(orders, pageOrders...)

		slog.Default().DebugContext(ctx, "fetched shopify orders page",
			slog.Int("page", page),
			slog.Int("count", len(pageOrders)))

		next, _ = NextPageURL(resp.Header().Get("Link"))
	}

	slog.Default().InfoContext(ctx, "fetched shopify orders",
		slog.String("from", dr.From.Format(entity.DateLayout)),
		slog.String("to", dr.To.Format(entity.DateLayout)),
		slog.Int("count", len(orders)))

	return &entity.OrderBatch{
		TotalSales: total.Round(0).IntPart(),
		OrderCount: len(orders),
		Orders:     orders,
	}, nil
}
