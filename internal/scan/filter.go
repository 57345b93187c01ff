package scan

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/lakshaymaurya-felt/devsweep/internal/project"
)

// ParseAge parses ages like "12h", "30d", "2w", "3m" (30 days) or "1y"
// (365 days).
func ParseAge(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid age %q: expected a number and a unit (h, d, w, m, y)", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid age %q: expected a number and a unit (h, d, w, m, y)", s)
	}

	day := 24 * time.Hour
	var unit time.Duration
	switch s[len(s)-1] {
	case 'h':
		unit = time.Hour
	case 'd':
		unit = day
	case 'w':
		unit = 7 * day
	case 'm':
		unit = 30 * day
	case 'y':
		unit = 365 * day
	default:
		return 0, fmt.Errorf("invalid age %q: unknown unit %q", s, s[len(s)-1:])
	}
	if int64(n) > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("invalid age %q: too large", s)
	}
	return time.Duration(n) * unit, nil
}

// OlderThan keeps projects last modified before cutoff.
func OlderThan(projects []project.ScannedProject, cutoff time.Time) []project.ScannedProject {
	out := make([]project.ScannedProject, 0, len(projects))
	for _, p := range projects {
		if p.LastModified.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// MinSize keeps projects with at least threshold cleanable bytes.
func MinSize(projects []project.ScannedProject, threshold uint64) []project.ScannedProject {
	out := make([]project.ScannedProject, 0, len(projects))
	for _, p := range projects {
		if p.TotalCleanableBytes >= threshold {
			out = append(out, p)
		}
	}
	return out
}

// SortBySize orders projects by cleanable bytes, largest first. Ties keep
// traversal order.
func SortBySize(projects []project.ScannedProject) {
	slices.SortStableFunc(projects, func(a, b project.ScannedProject) int {
		return cmp.Compare(b.TotalCleanableBytes, a.TotalCleanableBytes)
	})
}

// TotalBytes sums the cleanable bytes of projects.
func TotalBytes(projects []project.ScannedProject) uint64 {
	var total uint64
	for _, p := range projects {
		total += p.TotalCleanableBytes
	}
	return total
}
