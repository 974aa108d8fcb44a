package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Apache combined log format:
// LogFormat "%h %l %u %t \"%r\" %>s %b \"%{Referer}i\" \"%{User-agent}i\"" combined
//
// One capture group per field, single space separated, anchored at both
// ends. %b is "-" instead of 0 when no body was sent; the status group is
// just as permissive so both fields share one decoding rule.
var clfLine = regexp.MustCompile(
	`^(\d+\.\d+\.\d+\.\d+)` + // %h remote IP, textual capture only
		` (-)` + // %l remote logname, always "-" without mod_ident
		` (-)` + // %u remote user
		` \[([^\]]+)\]` + // %t bracketed timestamp
		` "([^"]+)"` + // %r first line of request
		` (\d+|-)` + // %>s status
		` (\d+|-)` + // %b body bytes
		` "([^"]+)"` + // Referer
		` "([^"]+)"$`) // User-agent

// requestLine splits %r into method, URL and protocol. The trailing group
// deliberately swallows the rest of the line; protocol tokens in real logs
// are too messy to validate against an HTTP-version grammar.
var requestLine = regexp.MustCompile(`^([A-Z]+) ([^ ]+) (.*)$`)

// ErrUnparsableLine reports a line that does not match the combined log
// format. Callers are expected to log and skip it, never abort.
var ErrUnparsableLine = errors.New("line does not match combined log format")

// ParseLine converts one raw log line into a LogEntry. The SystemAgent
// field is left for the caller to fill in from the user agent.
func ParseLine(line string) (LogEntry, error) {
	m := clfLine.FindStringSubmatch(line)
	if m == nil {
		return LogEntry{}, fmt.Errorf("%w: %q", ErrUnparsableLine, line)
	}

	entry := LogEntry{
		RemoteIP:   m[1],
		LogName:    m[2],
		User:       m[3],
		RawTime:    m[4],
		RawRequest: m[5],
		Response:   int(parseCLFInt(m[6])),
		Bytes:      parseCLFInt(m[7]),
		Referrer:   m[8],
		UserAgent:  m[9],
	}

	// Best effort: a request line that does not decompose leaves the
	// method/URL/protocol fields empty and keeps the entry.
	if r := requestLine.FindStringSubmatch(entry.RawRequest); r != nil {
		entry.Method = r[1]
		entry.URL = r[2]
		entry.Protocol = r[3]
	}
	return entry, nil
}

// parseCLFInt decodes the status and bytes fields, where "-" stands for 0.
// The line pattern restricts both tokens to digits or "-" before this runs,
// so ParseInt cannot fail on a matched line.
func parseCLFInt(s string) int64 {
	if s == "-" {
		return 0
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
