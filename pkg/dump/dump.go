// Package dump reads and writes the JSON transport: an ordered array of
// log entries with the "-" placeholders already resolved to integers.
package dump

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/yukarine/clfstat/pkg/parser"
)

// Write serializes entries as a pretty-printed JSON array.
func Write(w io.Writer, entries []parser.LogEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(entries)
}

// WriteFile writes the JSON dump to filename, truncating any existing file.
func WriteFile(filename string, entries []parser.LogEntry) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a JSON dump back into entries, preserving order.
func Read(r io.Reader) ([]parser.LogEntry, error) {
	var entries []parser.LogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode JSON dump: %w", err)
	}
	return entries, nil
}

// ReadFile reads the JSON dump at filename.
func ReadFile(filename string) ([]parser.LogEntry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
