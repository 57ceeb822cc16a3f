// internal/app/features/dashboard/overview.go
package dashboard

import (
	"strings"

	statsstore "github.com/bigkoko/kokoadmin/internal/app/store/stats"
	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/shopspring/decimal"
)

// card is a stat card with its value ready for display.
type card struct {
	Title  string
	Value  string
	Change string
	Up     bool
}

type overview struct {
	Cards        []card
	UserGrowth   []statsstore.Bar
	Revenue      []statsstore.Bar
	OrderStatus  []statsstore.Bar
	Unreplied    string
	Pending      string
	TotalRevenue string
}

func buildOverview(st models.Stats, unreplied, pending int) overview {
	ov := overview{
		Unreplied: countOrNA(unreplied),
		Pending:   countOrNA(pending),
	}

	for _, c := range st.Stats {
		ov.Cards = append(ov.Cards, card{
			Title:  c.Title,
			Value:  cardValue(c),
			Change: c.Change,
			Up:     !strings.EqualFold(c.Trend, "down"),
		})
	}

	growth := make([]decimal.Decimal, len(st.UserGrowth))
	for i, p := range st.UserGrowth {
		growth[i] = decimal.NewFromInt(p.Users)
	}
	for i, pct := range statsstore.Percentages(growth) {
		p := st.UserGrowth[i]
		ov.UserGrowth = append(ov.UserGrowth, statsstore.Bar{Label: p.Month, Value: format.Count(p.Users), Percent: pct})
	}

	revenue := make([]decimal.Decimal, len(st.MonthlyRevenue))
	total := decimal.Zero
	for i, p := range st.MonthlyRevenue {
		revenue[i] = p.Revenue
		total = total.Add(p.Revenue)
	}
	for i, pct := range statsstore.Percentages(revenue) {
		p := st.MonthlyRevenue[i]
		ov.Revenue = append(ov.Revenue, statsstore.Bar{Label: p.Month, Value: format.Compact(p.Revenue), Percent: pct})
	}
	ov.TotalRevenue = format.Money(total)

	counts := make([]decimal.Decimal, len(st.OrderStatusDistribution))
	for i, p := range st.OrderStatusDistribution {
		counts[i] = decimal.NewFromInt(p.Count)
	}
	for i, pct := range statsstore.Percentages(counts) {
		p := st.OrderStatusDistribution[i]
		ov.OrderStatus = append(ov.OrderStatus, statsstore.Bar{Label: p.Status, Value: format.Count(p.Count), Percent: pct})
	}
	return ov
}

// cardValue formats numeric card values; text values pass through.
func cardValue(c models.StatCard) string {
	d, ok := c.Value.Number()
	if !ok {
		return string(c.Value)
	}
	if strings.Contains(strings.ToLower(c.Title), "revenue") {
		return format.Money(d)
	}
	if d.IsInteger() {
		return format.Count(d.IntPart())
	}
	return d.StringFixed(2)
}
