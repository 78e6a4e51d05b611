package entity

import "github.com/shopspring/decimal"

// Order is a Shopify order reduced to the fields the digest needs.
type Order struct {
	TotalPrice decimal.Decimal
	LineItems  []LineItem
}

type LineItem struct {
	Title    string
	Quantity int
}

// OrderBatch is the result of one paginated order fetch.
type OrderBatch struct {
	TotalSales int64 // sum of TotalPrice, rounded once
	OrderCount int
	Orders     []Order
}
