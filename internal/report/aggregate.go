// Package report provides the pure grouping and ranking primitives shared by
// every statistics endpoint. All functions are deterministic over their
// inputs and hold no state, so callers may run them concurrently over
// independent snapshots.
package report

import (
	"sort"
	"time"
)

// Group is one ranked entry: a grouping key and the number of items that
// mapped to it.
type Group[K comparable] struct {
	Key   K
	Count int
}

// MonthKey identifies a calendar month within a year.
type MonthKey struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// GroupCount maps each item to a key and counts how many items share each
// key. Keys with zero items never appear.
func GroupCount[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int, len(items))
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// CountByKey is GroupCount plus the order in which each key was first
// encountered. The order slice is what makes ranking ties reproducible.
func CountByKey[T any, K comparable](items []T, key func(T) K) (map[K]int, []K) {
	counts := make(map[K]int, len(items))
	order := make([]K, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	return counts, order
}

// RankDescending orders the given keys by their count, highest first. The
// sort is stable: keys with equal counts keep the relative order of the
// order slice, which callers build from first-encounter order. Keys missing
// from counts rank as zero.
func RankDescending[K comparable](counts map[K]int, order []K) []Group[K] {
	ranked := make([]Group[K], 0, len(order))
	for _, k := range order {
		ranked = append(ranked, Group[K]{Key: k, Count: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// TopN returns the first n entries of a ranking, or all of them when fewer
// than n exist. n <= 0 yields an empty slice.
func TopN[K comparable](ranked []Group[K], n int) []Group[K] {
	if n <= 0 {
		return nil
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// BucketByMonth groups dates by calendar (month, year), returning counts and
// the first-encounter order of the buckets.
func BucketByMonth(dates []time.Time) (map[MonthKey]int, []MonthKey) {
	return CountByKey(dates, func(d time.Time) MonthKey {
		return MonthKey{Month: int(d.Month()), Year: d.Year()}
	})
}

// SumAndAverage folds a numeric attribute over items. The average is zero,
// not NaN, for empty input.
func SumAndAverage[T any](items []T, value func(T) float64) (count int, sum, avg float64) {
	for _, item := range items {
		sum += value(item)
	}
	count = len(items)
	if count > 0 {
		avg = sum / float64(count)
	}
	return count, sum, avg
}
