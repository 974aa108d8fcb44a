// Package analyze turns a collection of log entries into per-dimension
// frequency and traffic mappings.
package analyze

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/yukarine/clfstat/pkg/parser"
)

const oneMiB = 1 << 20

// Stats holds the aggregations over one full pass of the entries. The
// maps carry no ordering; use the *Entries methods for display-ready
// slices.
type Stats struct {
	HitsPerURL      map[string]int
	MegabytesPerIP  map[string]float64
	HitsPerResponse map[int]int
	HitsPerOS       map[string]int
	HitsPerHour     map[string]int

	TotalHits int
}

// Aggregate consumes the complete entry collection. An entry whose
// timestamp does not parse is excluded from the hour buckets only; it
// still counts in every other dimension.
func Aggregate(entries []parser.LogEntry) Stats {
	s := Stats{
		HitsPerURL:      make(map[string]int),
		MegabytesPerIP:  make(map[string]float64),
		HitsPerResponse: make(map[int]int),
		HitsPerOS:       make(map[string]int),
		HitsPerHour:     make(map[string]int),
	}
	for _, e := range entries {
		// Entries whose request line did not decompose fall back to the
		// raw request text, so they stay visible in the URL ranking.
		url := e.URL
		if url == "" {
			url = e.RawRequest
		}
		s.HitsPerURL[url]++
		s.MegabytesPerIP[e.RemoteIP] += float64(e.Bytes) / oneMiB
		s.HitsPerResponse[e.Response]++
		s.HitsPerOS[e.SystemAgent]++
		s.TotalHits++

		t, err := e.Time()
		if err != nil {
			log.Debug().Str("time", e.RawTime).Msg("timestamp did not parse, entry left out of hour buckets")
			continue
		}
		s.HitsPerHour[HourBucket(t.Hour())]++
	}
	return s
}

// HourBucket labels the hour-of-day range an entry falls into. The end of
// the range is hour+1 without wraparound, so hour 23 becomes
// "23:00-24:00" rather than crossing into the next day.
func HourBucket(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, hour+1)
}

// TotalMegabytes sums the traffic of every client.
func (s Stats) TotalMegabytes() float64 {
	var total float64
	for _, mb := range s.MegabytesPerIP {
		total += mb
	}
	return total
}

// TotalGigabytes is the total traffic in GB.
func (s Stats) TotalGigabytes() float64 {
	return s.TotalMegabytes() / 1024
}

// DistinctIPs counts clients that appear at least once.
func (s Stats) DistinctIPs() int {
	return len(s.MegabytesPerIP)
}

// DistinctURLs counts URLs that were hit at least once.
func (s Stats) DistinctURLs() int {
	return len(s.HitsPerURL)
}
