// Package scan drives the line-by-line read of an access log and collects
// the entries that parse.
package scan

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/yukarine/clfstat/pkg/agent"
	"github.com/yukarine/clfstat/pkg/fileiter"
	"github.com/yukarine/clfstat/pkg/parser"
)

// Collect reads lines from iter until it is exhausted and returns one
// LogEntry per parsable line, in input order. Unparsable lines are logged
// and skipped; only a failure of the underlying source is returned as an
// error.
func Collect(iter fileiter.Iterator) ([]parser.LogEntry, error) {
	var entries []parser.LogEntry
	skipped := 0
	for {
		line, err := iter.Next()
		if err != nil {
			return entries, err
		}
		if line == nil {
			break
		}
		text := strings.TrimSpace(string(line))
		if text == "" {
			continue
		}
		entry, err := parser.ParseLine(text)
		if err != nil {
			if errors.Is(err, parser.ErrUnparsableLine) {
				log.Warn().Int("line", iter.LineNumber()).Str("content", text).Msg("could not understand line")
				skipped++
				continue
			}
			return entries, err
		}
		entry.SystemAgent = agent.Classify(entry.UserAgent)
		entries = append(entries, entry)
	}
	log.Info().Int("entries", len(entries)).Int("skipped", skipped).Msg("finished reading log")
	return entries, nil
}

// CollectFile opens filename and collects its entries. Inputs compressed
// with gzip, xz or zstd are decompressed on the fly. When progress is set
// and the input is a regular file, a byte progress bar is drawn on stderr.
func CollectFile(filename string, progress bool) ([]parser.LogEntry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if progress {
		if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
			bar := progressbar.DefaultBytes(fi.Size(), "reading")
			defer bar.Close()
			// The bar tracks raw file bytes, so compressed inputs report
			// progress through the compressed size.
			r = io.TeeReader(f, bar)
		}
	}

	filtered, err := maybeDecompress(filename, r)
	if err != nil {
		return nil, err
	}
	if fr, ok := filtered.(*filteredReader); ok {
		defer fr.Close()
	}
	return Collect(fileiter.NewWithScanner(filtered))
}
