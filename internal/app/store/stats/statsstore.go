// internal/app/store/stats/statsstore.go
package statsstore

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/shopspring/decimal"
)

// Store loads the overview numbers.
type Store struct {
	c *backend.Client
}

func New(c *backend.Client) *Store {
	return &Store{c: c}
}

// Get returns the overview with duplicate months merged.
func (s *Store) Get(ctx context.Context) (models.Stats, error) {
	var out backend.One[models.Stats]
	if err := s.c.Do(ctx, http.MethodGet, "/stats", nil, nil, &out); err != nil {
		return models.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	st := out.Value
	st.UserGrowth = MergeUserGrowth(st.UserGrowth)
	st.MonthlyRevenue = MergeRevenue(st.MonthlyRevenue)
	st.OrderStatusDistribution = MergeStatusCounts(st.OrderStatusDistribution)
	return st, nil
}

// mergeByKey folds points sharing a key into the first one seen, keeping
// first-seen order.
func mergeByKey[T any](pts []T, key func(T) string, add func(into *T, p T)) []T {
	if len(pts) == 0 {
		return pts
	}
	idx := make(map[string]int, len(pts))
	out := make([]T, 0, len(pts))
	for _, p := range pts {
		k := key(p)
		if i, ok := idx[k]; ok {
			add(&out[i], p)
			continue
		}
		idx[k] = len(out)
		out = append(out, p)
	}
	return out
}

func monthKey(m string) string {
	return strings.TrimSpace(m)
}

// MergeUserGrowth sums user counts reported for the same month.
func MergeUserGrowth(pts []models.UserGrowthPoint) []models.UserGrowthPoint {
	return mergeByKey(pts,
		func(p models.UserGrowthPoint) string { return monthKey(p.Month) },
		func(into *models.UserGrowthPoint, p models.UserGrowthPoint) { into.Users += p.Users })
}

// MergeRevenue sums revenue reported for the same month.
func MergeRevenue(pts []models.RevenuePoint) []models.RevenuePoint {
	return mergeByKey(pts,
		func(p models.RevenuePoint) string { return monthKey(p.Month) },
		func(into *models.RevenuePoint, p models.RevenuePoint) { into.Revenue = into.Revenue.Add(p.Revenue) })
}

// MergeStatusCounts sums order counts reported for the same status.
func MergeStatusCounts(pts []models.StatusCount) []models.StatusCount {
	return mergeByKey(pts,
		func(p models.StatusCount) string { return strings.TrimSpace(p.Status) },
		func(into *models.StatusCount, p models.StatusCount) { into.Count += p.Count })
}

// Bar is one chart bar with its height as a percentage of the series max.
type Bar struct {
	Label   string
	Value   string
	Percent int
}

// Percentages scales values to 0..100 of their maximum. An all-zero series
// yields all zeros.
func Percentages(values []decimal.Decimal) []int {
	out := make([]int, len(values))
	top := decimal.Zero
	for _, v := range values {
		if v.GreaterThan(top) {
			top = v
		}
	}
	if !top.IsPositive() {
		return out
	}
	hundred := decimal.NewFromInt(100)
	for i, v := range values {
		if v.IsNegative() {
			continue
		}
		out[i] = int(v.Mul(hundred).Div(top).Round(0).IntPart())
	}
	return out
}
