package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	diagnosticProcessedTotal atomic.Uint64
	diagnosticFailedTotal    atomic.Uint64
	diagnosticStoredTotal    atomic.Uint64
	reportRenderedTotal      atomic.Uint64

	urgencyTotal = newLabeledCounter()

	diagnosticDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 500})
)

// IncDiagnosticProcessed increments the processed counter.
func IncDiagnosticProcessed() {
	diagnosticProcessedTotal.Add(1)
}

// IncDiagnosticFailed increments the failed counter.
func IncDiagnosticFailed() {
	diagnosticFailedTotal.Add(1)
}

// IncDiagnosticStored increments the persisted counter.
func IncDiagnosticStored() {
	diagnosticStoredTotal.Add(1)
}

// IncReportRendered increments the PDF report counter.
func IncReportRendered() {
	reportRenderedTotal.Add(1)
}

// IncUrgency counts a classified diagnostic by urgency level.
func IncUrgency(level string) {
	urgencyTotal.Inc(level)
}

// ObserveDiagnosticDurationMs records an engine run duration in milliseconds.
func ObserveDiagnosticDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	diagnosticDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "diagnostic_processed_total", "Total diagnostics processed", diagnosticProcessedTotal.Load())
	writeCounter(&buf, "diagnostic_failed_total", "Total diagnostics rejected or failed", diagnosticFailedTotal.Load())
	writeCounter(&buf, "diagnostic_stored_total", "Total diagnostics persisted", diagnosticStoredTotal.Load())
	writeCounter(&buf, "report_rendered_total", "Total PDF reports rendered", reportRenderedTotal.Load())
	writeLabeledCounter(&buf, "diagnostic_urgency_total", "Diagnostics by urgency level", "level", urgencyTotal.Snapshot())
	writeHistogram(&buf, "diagnostic_duration_ms", "Diagnostic engine duration in milliseconds", diagnosticDuration.Snapshot())
	return buf.String()
}

type labeledCounter struct {
	mu     sync.Mutex
	values map[string]uint64
}

func newLabeledCounter() *labeledCounter {
	return &labeledCounter{values: make(map[string]uint64)}
}

func (l *labeledCounter) Inc(label string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[label]++
}

func (l *labeledCounter) Snapshot() map[string]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]uint64, len(l.values))
	for k, v := range l.values {
		out[k] = v
	}
	return out
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeLabeledCounter(buf *bytes.Buffer, name, help, label string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, values[k])
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative = snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SinceMillis returns the elapsed time since start in milliseconds.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
