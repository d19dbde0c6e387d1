package reporter

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"yqhp/minbench/internal/harness"
)

// Header is the column header written before the result line.
var Header = []string{"method", "threads", "migration", "mean_time"}

// farmingStatsTag prefixes the extra farming line.
const farmingStatsTag = "farming_stats"

// CSVReporter writes the result as comma-separated lines:
//
//	method,threads,migration,mean_time
//	2,8,0,0.123456
//	farming_stats,2,8,0,0.123456,6102,6108
//
// The farming line is only written for the farming strategy and carries the
// block counts of the last trial.
type CSVReporter struct {
	w      *csv.Writer
	header bool
}

// NewCSVReporter creates a CSV reporter writing to w. When header is true
// the column header precedes the result.
func NewCSVReporter(w io.Writer, header bool) *CSVReporter {
	return &CSVReporter{w: csv.NewWriter(w), header: header}
}

// Name returns the reporter name.
func (r *CSVReporter) Name() string {
	return "csv"
}

// Report writes the result lines and flushes.
func (r *CSVReporter) Report(_ context.Context, result *harness.Result) error {
	if r.header {
		if err := r.w.Write(Header); err != nil {
			return err
		}
	}

	mean := strconv.FormatFloat(result.MeanSeconds(), 'f', 6, 64)
	row := []string{
		strconv.Itoa(result.Method),
		strconv.Itoa(result.Workers),
		strconv.Itoa(result.Migration),
		mean,
	}
	if err := r.w.Write(row); err != nil {
		return err
	}

	if f := result.Farming; f != nil {
		stats := append([]string{farmingStatsTag}, row...)
		stats = append(stats, strconv.Itoa(f.MinBlocks), strconv.Itoa(f.MaxBlocks))
		if err := r.w.Write(stats); err != nil {
			return err
		}
	}

	r.w.Flush()
	return r.w.Error()
}

// Close flushes any buffered output.
func (r *CSVReporter) Close() error {
	r.w.Flush()
	return r.w.Error()
}
