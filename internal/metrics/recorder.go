// Package metrics aggregates request latencies into an HDR histogram
// for the bench command.
package metrics

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Recorder accumulates latency samples and outcome counts for repeated
// executions of a request. It is not safe for concurrent use; the bench
// loop is sequential.
type Recorder struct {
	// Range: 1 microsecond to 1 hour, 3 significant figures.
	hist     *hdrhistogram.Histogram
	failures int64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(1, time.Hour.Microseconds(), 3),
	}
}

// RecordSuccess adds one successful request with the given latency.
func (r *Recorder) RecordSuccess(latency time.Duration) {
	// RecordValue only fails outside the histogram range; clamp instead
	// of dropping the sample.
	micros := latency.Microseconds()
	if micros < 1 {
		micros = 1
	}
	if micros > time.Hour.Microseconds() {
		micros = time.Hour.Microseconds()
	}
	r.hist.RecordValue(micros)
}

// RecordFailure counts a request that produced no response.
func (r *Recorder) RecordFailure() {
	r.failures++
}

// Summary is a point-in-time aggregation of the recorded samples.
type Summary struct {
	Count    int64
	Failures int64
	Min      time.Duration
	Mean     time.Duration
	P50      time.Duration
	P90      time.Duration
	P99      time.Duration
	Max      time.Duration
}

// Summarize computes the latency distribution of the samples so far.
func (r *Recorder) Summarize() Summary {
	return Summary{
		Count:    r.hist.TotalCount(),
		Failures: r.failures,
		Min:      time.Duration(r.hist.Min()) * time.Microsecond,
		Mean:     time.Duration(r.hist.Mean()) * time.Microsecond,
		P50:      time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:      time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:      time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond,
		Max:      time.Duration(r.hist.Max()) * time.Microsecond,
	}
}
