package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGroupCount(t *testing.T) {
	items := []string{"flu", "cold", "flu", "flu", "cold"}

	counts := GroupCount(items, func(s string) string { return s })

	assert.Equal(t, map[string]int{"flu": 3, "cold": 2}, counts)
}

func TestGroupCount_Empty(t *testing.T) {
	counts := GroupCount(nil, func(s string) string { return s })

	assert.Empty(t, counts)
}

func TestCountByKey_OrderIsFirstEncounter(t *testing.T) {
	items := []int{7, 3, 7, 5, 3, 7}

	counts, order := CountByKey(items, func(n int) int { return n })

	assert.Equal(t, map[int]int{7: 3, 3: 2, 5: 1}, counts)
	assert.Equal(t, []int{7, 3, 5}, order)
}

func TestRankDescending(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 3, "c": 2}

	ranked := RankDescending(counts, []string{"a", "b", "c"})

	assert.Equal(t, []Group[string]{{"b", 3}, {"c", 2}, {"a", 1}}, ranked)
}

func TestRankDescending_TiesKeepEncounterOrder(t *testing.T) {
	items := []string{"x", "y", "z", "x", "y", "z"}
	counts, order := CountByKey(items, func(s string) string { return s })

	ranked := RankDescending(counts, order)

	assert.Equal(t, []Group[string]{{"x", 2}, {"y", 2}, {"z", 2}}, ranked)
}

func TestRankDescending_MissingKeysRankZero(t *testing.T) {
	counts := map[int]int{2: 5}

	ranked := RankDescending(counts, []int{1, 2, 3})

	assert.Equal(t, []Group[int]{{2, 5}, {1, 0}, {3, 0}}, ranked)
}

func TestTopN(t *testing.T) {
	ranked := []Group[string]{{"a", 3}, {"b", 2}, {"c", 1}}

	assert.Len(t, TopN(ranked, 2), 2)
	assert.Equal(t, ranked, TopN(ranked, 5))
	assert.Empty(t, TopN(ranked, 0))
	assert.Empty(t, TopN(ranked, -1))
}

func TestBucketByMonth(t *testing.T) {
	dates := []time.Time{
		date(2024, time.March, 1),
		date(2024, time.March, 28),
		date(2024, time.April, 2),
		date(2023, time.March, 15),
	}

	counts, order := BucketByMonth(dates)

	assert.Equal(t, map[MonthKey]int{
		{Month: 3, Year: 2024}: 2,
		{Month: 4, Year: 2024}: 1,
		{Month: 3, Year: 2023}: 1,
	}, counts)
	assert.Equal(t, []MonthKey{
		{Month: 3, Year: 2024},
		{Month: 4, Year: 2024},
		{Month: 3, Year: 2023},
	}, order)
}

func TestSumAndAverage(t *testing.T) {
	durations := []int{5, 3, 10}

	count, sum, avg := SumAndAverage(durations, func(n int) float64 { return float64(n) })

	assert.Equal(t, 3, count)
	assert.Equal(t, 18.0, sum)
	assert.Equal(t, 6.0, avg)
}

func TestSumAndAverage_EmptyAverageIsZero(t *testing.T) {
	count, sum, avg := SumAndAverage(nil, func(n int) float64 { return float64(n) })

	assert.Zero(t, count)
	assert.Zero(t, sum)
	assert.Zero(t, avg)
}
