// Package fileiter yields log lines together with their position in the
// source, so diagnostics about skipped lines can point at them.
package fileiter

import (
	"bufio"
	"io"
)

// Iterator yields one log line per call to Next. It returns a nil line at
// end of input and a non-nil error when reading the source fails.
type Iterator interface {
	Next() ([]byte, error)
	// LineNumber is the 1-based number of the line most recently
	// returned by Next, 0 before the first call.
	LineNumber() int
}

type scannerIterator struct {
	scanner *bufio.Scanner
	line    int
}

// NewWithScanner wraps a reader into a line iterator with a buffer large
// enough for oversized log lines.
func NewWithScanner(r io.Reader) Iterator {
	const bufSz = 1024 * 1024
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, bufSz), bufSz)
	return &scannerIterator{scanner: scanner}
}

func (s *scannerIterator) Next() ([]byte, error) {
	if s.scanner.Scan() {
		s.line++
		return s.scanner.Bytes(), nil
	}
	return nil, s.scanner.Err()
}

func (s *scannerIterator) LineNumber() int {
	return s.line
}
