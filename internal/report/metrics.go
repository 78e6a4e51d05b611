package report

import (
	"github.com/jekabolt/sales-digest/internal/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeMetrics returns the conversion rate in percent rounded to two
// decimals and the average order value rounded to a whole currency unit.
// Both are zero when their denominator is zero. Rounding is half away from zero.
func ComputeMetrics(sales int64, orders, sessions int) (float64, int64) {
	var cvr float64
	if sessions > 0 {
		cvr = decimal.NewFromInt(int64(orders)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(sessions))).
			Round(2).
			InexactFloat64()
	}

	var aov int64
	if orders > 0 {
		aov = decimal.NewFromInt(sales).
			Div(decimal.NewFromInt(int64(orders))).
			Round(0).
			IntPart()
	}

	return cvr, aov
}

func windowMetrics(dr entity.DateRange, batch *entity.OrderBatch, sessions int) entity.WindowMetrics {
	cvr, aov := ComputeMetrics(batch.TotalSales, batch.OrderCount, sessions)
	return entity.WindowMetrics{
		Range:             dr,
		Sales:             batch.TotalSales,
		OrderCount:        batch.OrderCount,
		SessionCount:      sessions,
		ConversionRate:    cvr,
		AverageOrderValue: aov,
	}
}
