package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// TraceFile is the file name NewFileRecorder writes inside its directory.
const TraceFile = "trace.csv"

// Recorder appends samples to a CSV stream. A nil Recorder discards writes.
type Recorder struct {
	w             io.Writer
	headerWritten bool
	rows          int
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// NewFileRecorder creates dir if needed and records to dir/trace.csv.
// It returns nil when dir is empty (recording disabled).
func NewFileRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("telemetry: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, TraceFile)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create %s: %w", path, err)
	}
	return NewRecorder(f), nil
}

// Write appends samples, emitting the header on the first call.
func (r *Recorder) Write(samples ...Sample) error {
	if r == nil || len(samples) == 0 {
		return nil
	}
	if !r.headerWritten {
		if err := gocsv.Marshal(samples, r.w); err != nil {
			return fmt.Errorf("telemetry: write trace: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(samples, r.w); err != nil {
			return fmt.Errorf("telemetry: write trace: %w", err)
		}
	}
	r.rows += len(samples)
	return nil
}

// Rows returns the number of samples written.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}

// Close closes the underlying writer when it is closable.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	if c, ok := r.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadSamples parses a trace written by a Recorder.
func ReadSamples(rd io.Reader) ([]Sample, error) {
	var out []Sample
	if err := gocsv.Unmarshal(rd, &out); err != nil {
		return nil, fmt.Errorf("telemetry: read trace: %w", err)
	}
	return out, nil
}
