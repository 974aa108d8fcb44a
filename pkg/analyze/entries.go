package analyze

import (
	"slices"
	"strconv"
	"strings"
)

// Entry is one key of an aggregation mapping with its count or traffic
// volume, in the shape the reporter consumes.
type Entry struct {
	Key   string
	Value float64
}

// SortByValue orders entries descending by value, breaking ties by key so
// the output is deterministic.
func SortByValue(entries []Entry) {
	slices.SortFunc(entries, func(l, r Entry) int {
		switch {
		case l.Value > r.Value:
			return -1
		case l.Value < r.Value:
			return 1
		default:
			return strings.Compare(l.Key, r.Key)
		}
	})
}

// URLEntries returns the URL hit counts, unordered.
func (s Stats) URLEntries() []Entry {
	out := make([]Entry, 0, len(s.HitsPerURL))
	for url, hits := range s.HitsPerURL {
		out = append(out, Entry{Key: url, Value: float64(hits)})
	}
	return out
}

// IPEntries returns per-client traffic in megabytes, unordered.
func (s Stats) IPEntries() []Entry {
	out := make([]Entry, 0, len(s.MegabytesPerIP))
	for ip, mb := range s.MegabytesPerIP {
		out = append(out, Entry{Key: ip, Value: mb})
	}
	return out
}

// ResponseEntries returns the status code hit counts, sorted ascending by
// code for stable display.
func (s Stats) ResponseEntries() []Entry {
	codes := make([]int, 0, len(s.HitsPerResponse))
	for code := range s.HitsPerResponse {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	out := make([]Entry, 0, len(codes))
	for _, code := range codes {
		out = append(out, Entry{Key: strconv.Itoa(code), Value: float64(s.HitsPerResponse[code])})
	}
	return out
}

// OSEntries returns the per-OS hit counts, unordered.
func (s Stats) OSEntries() []Entry {
	out := make([]Entry, 0, len(s.HitsPerOS))
	for os, hits := range s.HitsPerOS {
		out = append(out, Entry{Key: os, Value: float64(hits)})
	}
	return out
}

// HourEntries returns the hour bucket counts sorted ascending by starting
// hour, which is the order they are displayed in.
func (s Stats) HourEntries() []Entry {
	labels := make([]string, 0, len(s.HitsPerHour))
	for label := range s.HitsPerHour {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	out := make([]Entry, 0, len(labels))
	for _, label := range labels {
		out = append(out, Entry{Key: label, Value: float64(s.HitsPerHour[label])})
	}
	return out
}
