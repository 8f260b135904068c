package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"BreakoutSentinel/internal/model"
)

// maxHeadlineRunes bounds the quoted headline length in the alert body.
const maxHeadlineRunes = 200

// riskTiers maps the share price to a risk label, highest floor first.
var riskTiers = []struct {
	MinPrice float64
	Label    string
}{
	{1.0, "🟩 آمن"},
	{0.5, "🟨 متوسط"},
}

// defaultRiskTier covers prices below every tier floor.
var defaultRiskTier = "🟥 مغامر"

func mapRiskTier(price float64) string {
	for _, t := range riskTiers {
		if price >= t.MinPrice {
			return t.Label
		}
	}
	return defaultRiskTier
}

// FormatAlert renders the breakout alert for one evaluated ticker. Pure and
// deterministic: same result, same text.
func FormatAlert(r *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("🚨 سهم قوي – Live PRO\n\n")
	b.WriteString(fmt.Sprintf("الرمز: %s\n", r.Ticker))
	b.WriteString(fmt.Sprintf("السعر الآن: %s\n", formatPrice(r.Price)))
	b.WriteString(fmt.Sprintf("الارتفاع: %s%%\n", formatSigned(r.PctChange)))
	b.WriteString(fmt.Sprintf("الفوليوم (آخر ~30m): %s\n", humanize.Comma(r.RecentVolume)))
	b.WriteString(fmt.Sprintf("المتوسط اليومي: %s\n", humanize.Comma(r.AvgDailyVolume)))
	b.WriteString(fmt.Sprintf("القيمة التقريبية: $%s\n\n", humanize.Comma(r.ApproxValue)))

	b.WriteString(fmt.Sprintf("مستوى المخاطر: %s\n", mapRiskTier(r.Price)))
	b.WriteString("الشرعية: ✔ قيد الفحص\n\n")

	b.WriteString(fmt.Sprintf("الدعم: %s\n", formatPrice(r.Support)))
	b.WriteString(fmt.Sprintf("المقاومة: %s\n", formatPrice(r.Resistance)))

	if len(r.News) > 0 {
		head := r.News[0].Headline
		if head == "" {
			head = r.News[0].Summary
		}
		b.WriteString(fmt.Sprintf("\nالخبر: %s\n", truncateRunes(head, maxHeadlineRunes)))
	}

	b.WriteString("\nتنويه: هذه نسخة PRO — تحقق يدويًا قبل الدخول.")
	return b.String()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatSigned(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v >= 0 {
		return "+" + s
	}
	return s
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
