// Package memoryuse records how much heap a benchmark run uses over time.
package memoryuse

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Measurement is a snapshot of memory usage in bytes.
type Measurement struct {
	UsedMemory int64
	MaxMemory  int64
}

// Measure samples the Go runtime. MaxMemory is the soft memory limit, or the memory obtained
// from the OS when no limit is set.
func Measure() Measurement {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	limit := debug.SetMemoryLimit(-1)
	if limit == math.MaxInt64 {
		limit = int64(ms.Sys)
	}
	return Measurement{UsedMemory: int64(ms.HeapAlloc), MaxMemory: limit}
}

// Point is one measurement taken after TimeMillisSpent of the run.
type Point struct {
	TimeMillisSpent int64
	Measurement     Measurement
}

// CSVLine renders the point as "elapsed,used,max".
func (p Point) CSVLine() string {
	return csvLine(p.TimeMillisSpent, p.Measurement.UsedMemory, p.Measurement.MaxMemory)
}

func csvLine(values ...int64) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(fields, ",")
}

// Header is the first line written by Statistic.WriteCSV.
const Header = `"Time spend","Used memory","Max memory"`

// Statistic collects points from concurrent recorders.
type Statistic struct {
	mu     sync.Mutex
	points []Point
}

// Record appends a point taken elapsed into the run.
func (s *Statistic) Record(elapsed time.Duration, m Measurement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, Point{TimeMillisSpent: elapsed.Milliseconds(), Measurement: m})
}

// Points returns a copy of the recorded points in recording order.
func (s *Statistic) Points() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Point(nil), s.points...)
}

// WriteCSV writes the header followed by one line per point.
func (s *Statistic) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("failed to write memory use header: %w", err)
	}
	for _, p := range s.Points() {
		if _, err := fmt.Fprintln(w, p.CSVLine()); err != nil {
			return fmt.Errorf("failed to write memory use point: %w", err)
		}
	}
	return nil
}
