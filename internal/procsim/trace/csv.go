package trace

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVSink writes every emitted Event as a row: header once, then one
// flushed row per event so a killed process still leaves a readable
// partial trace.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVSink creates (truncating) the file at path and writes the header
// row.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "kind", "pid", "detail"}); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	return &CSVSink{file: f, writer: w}, nil
}

func (s *CSVSink) Emit(e Event) {
	_ = s.writer.Write([]string{
		strconv.Itoa(e.Time),
		e.Kind.String(),
		strconv.Itoa(e.PID),
		e.Detail,
	})
	s.writer.Flush()
}

// Close flushes and closes the underlying file.
func (s *CSVSink) Close() error {
	s.writer.Flush()
	return s.file.Close()
}
