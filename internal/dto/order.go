// Package dto contains wire types for the Shopify and LINE APIs.
package dto

import (
	"fmt"

	"github.com/jekabolt/sales-digest/internal/entity"
	gerr "github.com/jekabolt/sales-digest/internal/errors"
	"github.com/shopspring/decimal"
)

// ShopifyOrdersResponse is the body of GET /admin/api/{version}/orders.json.
type ShopifyOrdersResponse struct {
	Orders []ShopifyOrder `json:"orders"`
}

type ShopifyOrder struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	TotalPrice string            `json:"total_price"`
	LineItems  []ShopifyLineItem `json:"line_items"`
}

type ShopifyLineItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// ConvertShopifyOrderToEntity converts a Shopify order to an entity Order.
func ConvertShopifyOrderToEntity(o ShopifyOrder) (entity.Order, error) {
	price, err := decimal.NewFromString(o.TotalPrice)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%w: order %d total_price %q: %v", gerr.ErrDecode, o.ID, o.TotalPrice, err)
	}

	items := make([]entity.LineItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		if li.Quantity < 0 {
			return entity.Order{}, fmt.Errorf("%w: order %d line item %q has negative quantity %d", gerr.ErrDecode, o.ID, li.Title, li.Quantity)
		}
		items = append(items, entity.LineItem{
			Title:    li.Title,
			Quantity: li.Quantity,
		})
	}

	return entity.Order{
		TotalPrice: price,
		LineItems:  items,
	}, nil
}

// ConvertShopifyOrdersToEntity converts a page of Shopify orders, failing on the first bad one.
func ConvertShopifyOrdersToEntity(orders []ShopifyOrder) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		eo, err := ConvertShopifyOrderToEntity(o)
		if err != nil {
			return nil, err
		}
		out = append(out, eo)
	}
	return out, nil
}
