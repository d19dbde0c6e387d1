package harness

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/duke-git/lancet/v2/mathutil"
)

// Result is the outcome of a complete run.
type Result struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	Method     int       `json:"method"`
	MethodName string    `json:"method_name"`
	Workers    int       `json:"threads"`
	Migration  int       `json:"migration"`

	WorkloadSize int    `json:"workload_size"`
	ChunkSize    int    `json:"chunk_size"`
	TrialCount   int    `json:"trial_count"`
	Cursor       string `json:"cursor,omitempty"`

	TotalTime time.Duration `json:"total_time_ns"`
	MeanTime  time.Duration `json:"mean_time_ns"`
	Timing    TimingSummary `json:"timing"`
	Trials    []TrialResult `json:"trials"`
	Farming   *FarmingStats `json:"farming,omitempty"`
}

// MeanSeconds returns the mean trial time in seconds.
func (r *Result) MeanSeconds() float64 {
	return r.MeanTime.Seconds()
}

// TrialResult records one trial.
type TrialResult struct {
	Index   int           `json:"index"`
	Elapsed time.Duration `json:"elapsed_ns"`
	// Blocks holds the per-worker chunk counts. Farming only.
	Blocks []int `json:"blocks,omitempty"`
}

// TimingSummary is the distribution of trial durations.
type TimingSummary struct {
	Min    time.Duration `json:"min_ns"`
	Max    time.Duration `json:"max_ns"`
	Mean   time.Duration `json:"mean_ns"`
	StdDev time.Duration `json:"stddev_ns"`
	P50    time.Duration `json:"p50_ns"`
	P90    time.Duration `json:"p90_ns"`
	P99    time.Duration `json:"p99_ns"`
}

// FarmingStats summarises how evenly farming spread the chunks.
type FarmingStats struct {
	// MinBlocks and MaxBlocks come from the last trial.
	MinBlocks   int `json:"min_blocks"`
	MaxBlocks   int `json:"max_blocks"`
	TotalBlocks int `json:"total_blocks"`

	// AllTrialsMinBlocks and AllTrialsMaxBlocks span every worker of every trial.
	AllTrialsMinBlocks int `json:"all_trials_min_blocks"`
	AllTrialsMaxBlocks int `json:"all_trials_max_blocks"`
}

// newFarmingStats derives farming statistics; it returns nil when no trial
// recorded block counts.
func newFarmingStats(trials []TrialResult) *FarmingStats {
	if len(trials) == 0 || len(trials[len(trials)-1].Blocks) == 0 {
		return nil
	}

	last := trials[len(trials)-1].Blocks
	stats := &FarmingStats{
		MinBlocks:          mathutil.Min(last...),
		MaxBlocks:          mathutil.Max(last...),
		TotalBlocks:        mathutil.Sum(last...),
		AllTrialsMinBlocks: mathutil.Min(last...),
		AllTrialsMaxBlocks: mathutil.Max(last...),
	}
	for _, tr := range trials[:len(trials)-1] {
		if len(tr.Blocks) == 0 {
			continue
		}
		stats.AllTrialsMinBlocks = min(stats.AllTrialsMinBlocks, mathutil.Min(tr.Blocks...))
		stats.AllTrialsMaxBlocks = max(stats.AllTrialsMaxBlocks, mathutil.Max(tr.Blocks...))
	}
	return stats
}

// Trial durations are recorded in microseconds, up to one hour.
const (
	histogramLowest  = 1
	histogramHighest = int64(time.Hour / time.Microsecond)
	histogramSigFigs = 3
)

func newTimingHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(histogramLowest, histogramHighest, histogramSigFigs)
}

func recordTrial(h *hdrhistogram.Histogram, d time.Duration) error {
	us := d.Microseconds()
	if us < histogramLowest {
		us = histogramLowest
	}
	return h.RecordValue(min(us, histogramHighest))
}

func summarize(h *hdrhistogram.Histogram) TimingSummary {
	us := func(v int64) time.Duration { return time.Duration(v) * time.Microsecond }
	return TimingSummary{
		Min:    us(h.Min()),
		Max:    us(h.Max()),
		Mean:   time.Duration(h.Mean() * float64(time.Microsecond)),
		StdDev: time.Duration(h.StdDev() * float64(time.Microsecond)),
		P50:    us(h.ValueAtQuantile(50)),
		P90:    us(h.ValueAtQuantile(90)),
		P99:    us(h.ValueAtQuantile(99)),
	}
}
