package insights

import "sort"

// Groups holds items bucketed by a string key. Keys are retained in
// first-seen order so downstream sorts stay deterministic regardless of map
// iteration order.
type Groups[T any] struct {
	keys  []string
	byKey map[string][]T
}

// GroupBy buckets items by the given key function.
func GroupBy[T any](items []T, key func(T) string) *Groups[T] {
	g := &Groups[T]{byKey: make(map[string][]T)}
	for _, item := range items {
		k := key(item)
		if _, seen := g.byKey[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.byKey[k] = append(g.byKey[k], item)
	}
	return g
}

// Keys returns the group keys in first-seen order.
func (g *Groups[T]) Keys() []string {
	return g.keys
}

// Get returns the items bucketed under key, nil when absent.
func (g *Groups[T]) Get(key string) []T {
	return g.byKey[key]
}

// Len returns the number of distinct groups.
func (g *Groups[T]) Len() int {
	return len(g.keys)
}

// SumBy totals a numeric projection over items. Empty input sums to 0.
func SumBy[T any](items []T, f func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += f(item)
	}
	return total
}

// Avg averages a numeric projection over items, 0 for empty input.
func Avg[T any](items []T, f func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return SumBy(items, f) / float64(len(items))
}

// RollupDaily totals units sold per ISO date. Dates with no sales are absent
// from the map, not zero-filled; callers that need a contiguous series must
// fill gaps themselves. Spike baselines deliberately run over available days
// only, so gaps shrink the effective window.
func RollupDaily(sales []Sale) map[string]int {
	daily := make(map[string]int)
	for _, sale := range sales {
		daily[sale.SaleDate.Format(dayLayout)] += sale.Qty
	}
	return daily
}

// sortedDays returns the rollup's dates in ascending order.
func sortedDays(daily map[string]int) []string {
	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

const dayLayout = "2006-01-02"
