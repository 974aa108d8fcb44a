// Package report renders aggregated mappings as ranked lists and console
// bar graphs.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/yukarine/clfstat/pkg/analyze"
)

const indent = "    "

// Unit describes how a mapping's values are formatted. Float units always
// print with two decimals even for whole values.
type Unit struct {
	Name  string
	Float bool
}

var (
	Hits      = Unit{Name: "hits"}
	Megabytes = Unit{Name: "MB", Float: true}
)

// Style carries the colors used for headers, bar labels and values. It is
// plain data handed to the reporter, not process-wide state; pass
// PlainStyle to render without any styling.
type Style struct {
	Header *color.Color
	Label  *color.Color
	Value  *color.Color
}

func DefaultStyle() Style {
	return Style{
		Header: color.New(color.FgHiMagenta, color.Bold, color.Underline),
		Label:  color.New(color.FgBlue),
		Value:  color.New(color.FgGreen),
	}
}

func PlainStyle() Style {
	s := Style{
		Header: color.New(),
		Label:  color.New(),
		Value:  color.New(),
	}
	s.Header.DisableColor()
	s.Label.DisableColor()
	s.Value.DisableColor()
	return s
}

// Reporter writes report sections to one destination. It never mutates
// the entries it is given.
type Reporter struct {
	w     io.Writer
	style Style
}

func New(w io.Writer, style Style) *Reporter {
	return &Reporter{w: w, style: style}
}

func (r *Reporter) header(title string, topN int) {
	if topN > 0 {
		title = fmt.Sprintf("%s - Top %d", title, topN)
	}
	fmt.Fprintln(r.w, r.style.Header.Sprint(title))
}

func (r *Reporter) formatValue(value float64, unit Unit) string {
	if unit.Float {
		return fmt.Sprintf("%.2f %s", value, unit.Name)
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(value)), unit.Name)
}

// RankedList prints entries sorted descending by value, truncated to the
// topN highest, one rank per line.
func (r *Reporter) RankedList(title string, entries []analyze.Entry, unit Unit, topN int) error {
	r.header(title, topN)

	ranked := slices.Clone(entries)
	analyze.SortByValue(ranked)
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	table := tablewriter.NewTable(
		r.w,
		tablewriter.WithHeaderAutoWrap(tw.WrapNone),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithPadding(tw.Padding{
			Right:     " ",
			Overwrite: true,
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
	)
	for i, e := range ranked {
		row := []string{
			fmt.Sprintf("%s#%d:", indent, i+1),
			e.Key,
			r.formatValue(e.Value, unit),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// BarGraph prints one bar per entry, scaled against the largest shown
// value. With topN > 0 the entries are ranked and truncated first, so the
// percentages are relative to the truncated subset's sum. With topN == 0
// the given order is preserved.
func (r *Reporter) BarGraph(title string, entries []analyze.Entry, unit Unit, showPercents bool, topN int) {
	r.header(title, topN)

	shown := slices.Clone(entries)
	if topN > 0 {
		analyze.SortByValue(shown)
		if len(shown) > topN {
			shown = shown[:topN]
		}
	}
	if len(shown) == 0 {
		return
	}

	var sum, max float64
	labelWidth := 0
	for _, e := range shown {
		sum += e.Value
		if e.Value > max {
			max = e.Value
		}
		if len(e.Key) > labelWidth {
			labelWidth = len(e.Key)
		}
	}

	for _, e := range shown {
		barLen := 0
		if max > 0 {
			barLen = int(e.Value * 100 / max)
		}
		label := fmt.Sprintf("%-*s", labelWidth, e.Key)
		line := fmt.Sprintf("%s%s|%s : %s",
			indent,
			r.style.Label.Sprint(label),
			strings.Repeat("█", barLen),
			r.style.Value.Sprint(r.formatValue(e.Value, unit)))
		if showPercents && sum > 0 {
			line += fmt.Sprintf(" / %.2f%%", e.Value*100/sum)
		}
		fmt.Fprintln(r.w, line)
	}
}

// Totals prints the summary block that closes the report.
func (r *Reporter) Totals(stats analyze.Stats) {
	r.header("Stats", 0)
	fmt.Fprintf(r.w, "%sTotal hits: %s\n", indent, humanize.Comma(int64(stats.TotalHits)))
	fmt.Fprintf(r.w, "%sTotal traffic: %.2fGB\n", indent, stats.TotalGigabytes())
	fmt.Fprintf(r.w, "%sDifferent visitors: %d\n", indent, stats.DistinctIPs())
	fmt.Fprintf(r.w, "%sDifferent URLs visited: %d\n", indent, stats.DistinctURLs())
}

// Print renders the whole report in its fixed section order.
func Print(w io.Writer, stats analyze.Stats, style Style, topN int, showPercents bool) error {
	r := New(w, style)
	if err := r.RankedList("Hits per page", stats.URLEntries(), Hits, topN); err != nil {
		return err
	}
	if err := r.RankedList("Megabytes per IP", stats.IPEntries(), Megabytes, topN); err != nil {
		return err
	}
	r.BarGraph("Response codes", stats.ResponseEntries(), Hits, showPercents, 0)
	if err := r.RankedList("Hits per OS", stats.OSEntries(), Hits, topN); err != nil {
		return err
	}
	r.BarGraph("Hits per time range", stats.HourEntries(), Hits, showPercents, 0)
	r.Totals(stats)
	return nil
}
