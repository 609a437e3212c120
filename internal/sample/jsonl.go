package sample

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Writer emits records as line-delimited JSON.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter wraps w for JSONL output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one record as a single JSON line.
func (w *Writer) Write(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// OpenFile opens a JSONL file for writing, appending when append is set.
func OpenFile(path string, append bool) (*Writer, *os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output: %w", err)
	}
	return NewWriter(f), f, nil
}

// Read decodes JSONL records from r. Lines that are not valid JSON are
// reported in the second return value ("line N: ...") and do not stop the
// scan; corpora come from noisy producers and one bad line must not discard
// the rest.
func Read(r io.Reader) ([]Record, []string, error) {
	var (
		records []Record
		badLine []string
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			badLine = append(badLine, fmt.Sprintf("line %d: invalid JSON: %v", lineNum, err))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading records: %w", err)
	}
	return records, badLine, nil
}

// ReadFile decodes JSONL records from a file.
func ReadFile(path string) ([]Record, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return Read(f)
}
