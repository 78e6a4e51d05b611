package report

import (
	"fmt"
	"strings"

	"github.com/jekabolt/sales-digest/internal/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultTitle = "Admiral Shopify"

// Format renders the report as the LINE text message. The layout is
// consumed downstream as-is, so labels, spacing and line breaks are fixed.
func Format(title string, r *entity.Report) string {
	if title == "" {
		title = DefaultTitle
	}
	p := message.NewPrinter(language.English)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s 売上レポート（%s）\n\n", title, r.ReportDate.Format(entity.DateLayout))

	fmt.Fprintf(&sb, "🗓 当月総計（%s～%s）\n",
		r.Month.Range.From.Format(entity.DateLayout), r.Month.Range.To.Format(entity.DateLayout))
	writeWindow(&sb, p, r.Month)

	fmt.Fprintf(&sb, "🗖 昨日（%s）\n", r.Day.Range.From.Format(entity.DateLayout))
	writeWindow(&sb, p, r.Day)

	sb.WriteString("🏆 昨日の売上個数ランキング（Top 5） \n")
	lines := make([]string, 0, len(r.Ranking))
	for i, e := range r.Ranking {
		lines = append(lines, fmt.Sprintf("%d位 %s（%d個）", i+1, e.Title, e.Quantity))
	}
	sb.WriteString(strings.Join(lines, "\n"))

	return sb.String()
}

func writeWindow(sb *strings.Builder, p *message.Printer, w entity.WindowMetrics) {
	fmt.Fprintf(sb, " 売上金額：¥%s \n 注文数：%d件 \n👥 セッション数：%d\n",
		p.Sprintf("%d", w.Sales), w.OrderCount, w.SessionCount)
	fmt.Fprintf(sb, "✅ CVR：%.2f%%\n💰 注文単価：¥%s\n\n",
		w.ConversionRate, p.Sprintf("%d", w.AverageOrderValue))
}
