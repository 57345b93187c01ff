package core

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count in SI units (e.g. "120 MB").
func FormatSize(bytes uint64) string {
	return humanize.Bytes(bytes)
}

// ParseSize parses a human size such as "50MB" or "1.5 GiB".
func ParseSize(s string) (uint64, error) {
	return humanize.ParseBytes(s)
}

// FormatAge renders t relative to now (e.g. "3 months ago").
// The zero time renders as "unknown".
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}
