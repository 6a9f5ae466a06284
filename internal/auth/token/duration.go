package token

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ttlPattern = regexp.MustCompile(`^(\d+)\s*([smhdSMHD])?$`)

// ParseTTL parses a compact duration string of the form <number><unit>,
// where unit is one of s, m, h, d and defaults to seconds. Unlike
// time.ParseDuration it understands days, and unlike the usual lenient
// parsers it rejects anything it does not understand outright: a silently
// zeroed TTL would produce tokens that expire on arrival.
func ParseTTL(s string) (time.Duration, error) {
	m := ttlPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid ttl %q", s)
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ttl %q: %w", s, err)
	}

	unit := time.Second
	switch strings.ToLower(m[2]) {
	case "", "s":
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	}

	return time.Duration(n) * unit, nil
}
