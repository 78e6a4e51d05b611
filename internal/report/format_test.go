package report

import (
	"testing"
	"time"

	"github.com/jekabolt/sales-digest/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	day := entity.NewDay(time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC))
	r := &entity.Report{
		ReportDate: time.Date(2024, time.May, 16, 0, 0, 0, 0, time.UTC),
		Month: entity.WindowMetrics{
			Range:             entity.MonthToDate(day.To),
			Sales:             1234567,
			OrderCount:        321,
			SessionCount:      45678,
			ConversionRate:    0.7,
			AverageOrderValue: 3846,
		},
		Day: entity.WindowMetrics{
			Range:             day,
			Sales:             98765,
			OrderCount:        25,
			SessionCount:      3210,
			ConversionRate:    0.78,
			AverageOrderValue: 3951,
		},
		Ranking: []entity.RankingEntry{
			{Title: "Tee", Quantity: 12},
			{Title: "Cap", Quantity: 7},
		},
	}

	expected := "Admiral Shopify 売上レポート（2024-05-16）\n\n" +
		"🗓 当月総計（2024-05-01～2024-05-15）\n" +
		" 売上金額：¥1,234,567 \n 注文数：321件 \n👥 セッション数：45678\n" +
		"✅ CVR：0.70%\n💰 注文単価：¥3,846\n\n" +
		"🗖 昨日（2024-05-15）\n" +
		" 売上金額：¥98,765 \n 注文数：25件 \n👥 セッション数：3210\n" +
		"✅ CVR：0.78%\n💰 注文単価：¥3,951\n\n" +
		"🏆 昨日の売上個数ランキング（Top 5） \n" +
		"1位 Tee（12個）\n2位 Cap（7個）"

	assert.Equal(t, expected, Format("", r))
}

func TestFormat_EmptyDay(t *testing.T) {
	day := entity.NewDay(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	r := &entity.Report{
		ReportDate: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		Month:      entity.WindowMetrics{Range: entity.MonthToDate(day.To)},
		Day:        entity.WindowMetrics{Range: day},
		Ranking:    []entity.RankingEntry{},
	}

	expected := "My Shop 売上レポート（2024-06-02）\n\n" +
		"🗓 当月総計（2024-06-01～2024-06-01）\n" +
		" 売上金額：¥0 \n 注文数：0件 \n👥 セッション数：0\n" +
		"✅ CVR：0.00%\n💰 注文単価：¥0\n\n" +
		"🗖 昨日（2024-06-01）\n" +
		" 売上金額：¥0 \n 注文数：0件 \n👥 セッション数：0\n" +
		"✅ CVR：0.00%\n💰 注文単価：¥0\n\n" +
		"🏆 昨日の売上個数ランキング（Top 5） \n"

	assert.Equal(t, expected, Format("My Shop", r))
}
