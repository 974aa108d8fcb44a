// Package agent guesses the client operating system from a user agent
// string.
package agent

import (
	"regexp"

	"github.com/rs/zerolog/log"
)

// Unknown is the label used when no heuristic matches.
const Unknown = "Unknown"

type rule struct {
	name    string
	pattern *regexp.Regexp
}

// Rules are evaluated in order, first match wins. Mobile comes before
// desktop: iOS user agents also contain "Mac OS X", and the mobile marker
// is the one that carries intent.
var rules = []rule{
	{"mobile", regexp.MustCompile(`(?i)(iPhone OS \d+(_\d+)*|Android \d+(\.\d+)*|iPad)`)},
	{"desktop", regexp.MustCompile(`(?i)(Windows NT \d+\.?\d*|Mac OS [A-Za-z0-9._ ]+|Linux \d+(\.\d+)*)`)},
}

// Classify returns the OS label matched in the user agent string, verbatim
// as written there, or Unknown. An unrecognized agent is expected and only
// noted at debug level.
func Classify(userAgent string) string {
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(userAgent); m != nil {
			return m[1]
		}
	}
	log.Debug().Str("user_agent", userAgent).Msg("OS could not be guessed")
	return Unknown
}
