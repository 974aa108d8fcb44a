package parser

import "time"

// CommonLogFormat is the layout of the bracketed CLF timestamp,
// for example "18/Sep/2011:19:18:28 -0400".
const CommonLogFormat = "02/Jan/2006:15:04:05 -0700"

// LogEntry is one access log line in structured form. Entries are built
// once per successfully matched line and not mutated afterwards.
type LogEntry struct {
	RemoteIP   string `json:"remote_ip"`
	LogName    string `json:"log_name"`
	User       string `json:"user"`
	RawTime    string `json:"time"`
	RawRequest string `json:"request"`

	// Method, URL and Protocol stay empty when the request line does not
	// decompose into "METHOD URL PROTOCOL". The entry is still valid.
	Method   string `json:"method,omitempty"`
	URL      string `json:"url,omitempty"`
	Protocol string `json:"protocol,omitempty"`

	Response    int    `json:"response"`
	Bytes       int64  `json:"bytes"`
	Referrer    string `json:"referrer"`
	UserAgent   string `json:"user_agent"`
	SystemAgent string `json:"system_agent"`
}

// Time parses the bracketed timestamp captured from the log line.
// Parsing is deferred until aggregation needs it; a failure here only
// excludes the entry from hour-of-day bucketing.
func (e LogEntry) Time() (time.Time, error) {
	return time.Parse(CommonLogFormat, e.RawTime)
}
