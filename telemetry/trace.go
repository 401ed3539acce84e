// Package telemetry writes per-tick diagnostics for headless and graphical runs.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"snake-classic/game"
)

// TickRecord is one CSV row of the trace.
type TickRecord struct {
	Frame     int    `csv:"frame"`
	Session   string `csv:"session"`
	Tick      int    `csv:"tick"`
	Phase     string `csv:"phase"`
	Direction string `csv:"direction"`
	HeadX     int    `csv:"head_x"`
	HeadY     int    `csv:"head_y"`
	Length    int    `csv:"length"`
	FoodX     int    `csv:"food_x"`
	FoodY     int    `csv:"food_y"`
	Collision string `csv:"collision"`
}

// NewTickRecord flattens a snapshot taken at the given loop frame.
func NewTickRecord(frame int, s game.Snapshot) TickRecord {
	head := s.Head()
	return TickRecord{
		Frame:     frame,
		Session:   s.Session,
		Tick:      s.Tick,
		Phase:     s.Phase.String(),
		Direction: s.Direction.String(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Length:    len(s.Body),
		FoodX:     s.Food.X,
		FoodY:     s.Food.Y,
		Collision: s.Collision.String(),
	}
}

// TraceWriter appends TickRecords as CSV. A nil *TraceWriter discards
// everything, so callers need not check whether tracing is enabled.
type TraceWriter struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewTraceWriter writes to out. The caller keeps ownership of out.
func NewTraceWriter(out io.Writer) *TraceWriter {
	return &TraceWriter{out: out}
}

// CreateTrace creates (or truncates) path and writes the trace there.
// Returns nil if path is empty.
func CreateTrace(path string) (*TraceWriter, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &TraceWriter{out: f, closer: f}, nil
}

// Write appends one record.
func (tw *TraceWriter) Write(rec TickRecord) error {
	if tw == nil {
		return nil
	}

	records := []TickRecord{rec}

	if !tw.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, tw.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		tw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, tw.out); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Close closes the underlying file when the writer owns one.
func (tw *TraceWriter) Close() error {
	if tw == nil || tw.closer == nil {
		return nil
	}
	return tw.closer.Close()
}
