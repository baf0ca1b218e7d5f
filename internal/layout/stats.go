package layout

import (
	"sort"
	"sync"
	"time"
)

type timing struct {
	at time.Time
	us int64
}

// StatsSnapshot is a point-in-time aggregate of layout call latencies,
// in microseconds.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinUs int64   `json:"min_us"`
	MaxUs int64   `json:"max_us"`
	AvgUs float64 `json:"avg_us"`
	P50Us float64 `json:"p50_us"`
	P95Us float64 `json:"p95_us"`
	P99Us float64 `json:"p99_us"`
}

// LayoutStats tracks recent layout durations within a rolling window.
type LayoutStats struct {
	mu      sync.Mutex
	timings []timing
	maxAge  time.Duration
}

func NewLayoutStats(maxAge time.Duration) *LayoutStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &LayoutStats{
		timings: make([]timing, 0, 256),
		maxAge:  maxAge,
	}
}

func (s *LayoutStats) Record(d time.Duration) {
	if d < 0 {
		d = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.timings = append(s.timings, timing{at: now, us: d.Microseconds()})
}

func (s *LayoutStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.timings) == 0 {
		return StatsSnapshot{}
	}

	values := make([]int64, 0, len(s.timings))
	var sum int64
	for _, t := range s.timings {
		values = append(values, t.us)
		sum += t.us
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count: len(values),
		MinUs: values[0],
		MaxUs: values[len(values)-1],
		AvgUs: float64(sum) / float64(len(values)),
		P50Us: percentile(values, 50),
		P95Us: percentile(values, 95),
		P99Us: percentile(values, 99),
	}
}

func (s *LayoutStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, t := range s.timings {
		if !t.at.Before(cutoff) {
			s.timings[writeIdx] = t
			writeIdx++
		}
	}
	s.timings = s.timings[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
