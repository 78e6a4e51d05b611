package report

import (
	"fmt"
	"testing"

	"github.com/jekabolt/sales-digest/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(price string, items ...entity.LineItem) entity.Order {
	return entity.Order{TotalPrice: decimal.RequireFromString(price), LineItems: items}
}

func TestRankProducts_TieKeepsFirstSeen(t *testing.T) {
	orders := []entity.Order{
		order("10.00", entity.LineItem{Title: "A", Quantity: 2}),
		order("5.50", entity.LineItem{Title: "A", Quantity: 1}, entity.LineItem{Title: "B", Quantity: 3}),
	}

	assert.Equal(t, []entity.RankingEntry{
		{Title: "A", Quantity: 3},
		{Title: "B", Quantity: 3},
	}, RankProducts(orders))
}

func TestRankProducts_Empty(t *testing.T) {
	r := RankProducts(nil)
	require.NotNil(t, r)
	assert.Empty(t, r)

	r = RankProducts([]entity.Order{order("1.00")})
	assert.Empty(t, r)
}

func TestRankProducts_TruncatesAndSorts(t *testing.T) {
	var orders []entity.Order
	for i := 1; i <= 8; i++ {
		orders = append(orders, order("1.00", entity.LineItem{Title: fmt.Sprintf("item-%d", i), Quantity: i % 4}))
	}
	orders = append(orders, order("1.00", entity.LineItem{Title: "item-1", Quantity: 10}))

	r := RankProducts(orders)
	require.Len(t, r, TopN)
	assert.Equal(t, entity.RankingEntry{Title: "item-1", Quantity: 11}, r[0])
	for i := 1; i < len(r); i++ {
		assert.GreaterOrEqual(t, r[i-1].Quantity, r[i].Quantity)
	}
	// item-3 and item-7 both have 3; item-3 was seen first.
	assert.Equal(t, "item-3", r[1].Title)
	assert.Equal(t, "item-7", r[2].Title)
}

func TestRankProducts_MergesByTitle(t *testing.T) {
	orders := []entity.Order{
		order("1.00", entity.LineItem{Title: "Tee", Quantity: 1}, entity.LineItem{Title: "Tee", Quantity: 4}),
		order("1.00", entity.LineItem{Title: "Cap", Quantity: 2}),
	}
	assert.Equal(t, []entity.RankingEntry{
		{Title: "Tee", Quantity: 5},
		{Title: "Cap", Quantity: 2},
	}, RankProducts(orders))
}
