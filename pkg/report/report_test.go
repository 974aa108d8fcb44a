package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukarine/clfstat/pkg/analyze"
)

func TestRankedListOrder(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, PlainStyle())
	entries := []analyze.Entry{
		{Key: "/b", Value: 1},
		{Key: "/a", Value: 3},
	}
	require.NoError(t, r.RankedList("Hits per page", entries, Hits, 10))

	out := buf.String()
	assert.Contains(t, out, "Hits per page - Top 10")
	posA := strings.Index(out, "/a")
	posB := strings.Index(out, "/b")
	require.GreaterOrEqual(t, posA, 0)
	require.GreaterOrEqual(t, posB, 0)
	assert.Less(t, posA, posB, "/a must rank above /b")
	assert.Contains(t, out, "#1:")
	assert.Contains(t, out, "3 hits")
}

func TestRankedListTruncation(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, PlainStyle())
	entries := []analyze.Entry{
		{Key: "/a", Value: 5},
		{Key: "/b", Value: 4},
		{Key: "/c", Value: 3},
	}
	require.NoError(t, r.RankedList("Hits per page", entries, Hits, 2))
	out := buf.String()
	assert.Contains(t, out, "/a")
	assert.Contains(t, out, "/b")
	assert.NotContains(t, out, "/c")
}

func TestRankedListFloatUnit(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, PlainStyle())
	entries := []analyze.Entry{{Key: "10.0.0.1", Value: 3}}
	require.NoError(t, r.RankedList("Megabytes per IP", entries, Megabytes, 10))
	// Float units always carry two decimals, even for whole values.
	assert.Contains(t, buf.String(), "3.00 MB")
}

func TestBarGraph(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, PlainStyle())
	entries := []analyze.Entry{
		{Key: "200", Value: 3},
		{Key: "404", Value: 1},
	}
	r.BarGraph("Response codes", entries, Hits, true, 0)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Response codes", lines[0])

	// Largest value gets the full 100-char bar; the given order is kept.
	assert.Contains(t, lines[1], "200|"+strings.Repeat("█", 100))
	assert.Contains(t, lines[1], "3 hits / 75.00%")
	assert.Contains(t, lines[2], "404|"+strings.Repeat("█", 33))
	assert.Contains(t, lines[2], "1 hits / 25.00%")
}

// Truncating before percentages means they are relative to the shown
// subset, not the whole mapping.
func TestBarGraphTopNPercentages(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, PlainStyle())
	entries := []analyze.Entry{
		{Key: "c", Value: 1},
		{Key: "a", Value: 6},
		{Key: "b", Value: 3},
	}
	r.BarGraph("Response codes", entries, Hits, true, 2)

	out := buf.String()
	assert.Contains(t, out, "Response codes - Top 2")
	assert.NotContains(t, out, "c|")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "33.33%")
}

func TestBarGraphLabelPadding(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, PlainStyle())
	entries := []analyze.Entry{
		{Key: "short", Value: 2},
		{Key: "much longer label", Value: 2},
	}
	r.BarGraph("t", entries, Hits, false, 0)
	// Shorter labels are padded to the longest label's width.
	assert.Contains(t, buf.String(), "short            |")
}

func TestTotals(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, PlainStyle())
	stats := analyze.Stats{
		HitsPerURL:     map[string]int{"/a": 3, "/b": 1},
		MegabytesPerIP: map[string]float64{"10.0.0.1": 2048, "10.0.0.2": 1024},
		TotalHits:      4,
	}
	r.Totals(stats)

	out := buf.String()
	assert.Contains(t, out, "Total hits: 4")
	assert.Contains(t, out, "Total traffic: 3.00GB")
	assert.Contains(t, out, "Different visitors: 2")
	assert.Contains(t, out, "Different URLs visited: 2")
}

func TestPrintFullReport(t *testing.T) {
	stats := analyze.Aggregate(nil)
	stats.HitsPerURL["/a"] = 2
	stats.MegabytesPerIP["10.0.0.1"] = 1.5
	stats.HitsPerResponse[200] = 2
	stats.HitsPerOS["Unknown"] = 2
	stats.HitsPerHour["23:00-24:00"] = 2
	stats.TotalHits = 2

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, stats, PlainStyle(), 10, true))

	out := buf.String()
	for _, section := range []string{
		"Hits per page - Top 10",
		"Megabytes per IP - Top 10",
		"Response codes",
		"Hits per OS - Top 10",
		"Hits per time range",
		"Stats",
	} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "23:00-24:00")
}
