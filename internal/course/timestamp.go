package course

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTimestamp converts seconds to "MM:SS", or "H:MM:SS" at one hour
// and beyond. Negative input formats as "00:00".
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseTimestamp converts "MM:SS" or "H:MM:SS" to seconds.
// Malformed input parses as 0.
func ParseTimestamp(ts string) int {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	switch len(parts) {
	case 2:
		m := atoi(parts[0])
		s := atoi(parts[1])
		return m*60 + s
	case 3:
		h := atoi(parts[0])
		m := atoi(parts[1])
		s := atoi(parts[2])
		return h*3600 + m*60 + s
	}
	return 0
}

// FormatDuration renders a second count as a compact display string:
// "1h 30m", "12m 5s", or "45s".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	remaining := seconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, remaining)
	default:
		return fmt.Sprintf("%ds", remaining)
	}
}

// ParseDurationEstimate converts an LLM duration estimate like
// "15 minutes", "1 hour 30 minutes", or "45 seconds" to seconds.
// Returns 0 if nothing numeric is recognized.
func ParseDurationEstimate(estimate string) int {
	fields := strings.Fields(strings.ToLower(estimate))
	total := 0
	for i := 0; i+1 < len(fields); i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			continue
		}
		unit := strings.TrimSuffix(fields[i+1], "s")
		switch unit {
		case "hour", "hr", "h":
			total += n * 3600
		case "minute", "min", "m":
			total += n * 60
		case "second", "sec":
			total += n
		}
	}
	return total
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
