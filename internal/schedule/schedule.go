// Package schedule renders trigger cron expressions as human-readable
// phrases for display. It understands a small subset of 5-field cron and
// fails soft on everything else: malformed or unsupported expressions come
// back as-is, never as an error. Timezone handling is a display concern of
// the caller; no time arithmetic happens here.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackLabel is returned for blank expressions.
const FallbackLabel = "Custom schedule"

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Summarize converts a 5-field cron expression (minute hour day-of-month
// month day-of-week) into a best-effort natural-language phrase.
func Summarize(expr string) string {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return FallbackLabel
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 5 {
		return expr
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	// Only plain wildcards and single numeric values are summarized.
	if month != "*" {
		return expr
	}

	switch {
	case minute == "*" && hour == "*" && dom == "*" && dow == "*":
		return "Every minute"

	case hour == "*" && dom == "*" && dow == "*":
		m, ok := atoiInRange(minute, 0, 59)
		if !ok {
			return expr
		}
		return fmt.Sprintf("Every hour at :%02d", m)

	case dom == "*" && dow == "*":
		clock, ok := clockPhrase(minute, hour)
		if !ok {
			return expr
		}
		return "Every day at " + clock

	case dom == "*":
		d, ok := atoiInRange(dow, 0, 7)
		if !ok {
			return expr
		}
		clock, ok := clockPhrase(minute, hour)
		if !ok {
			return expr
		}
		return fmt.Sprintf("Every %s at %s", dayNames[d%7], clock)

	case dow == "*":
		d, ok := atoiInRange(dom, 1, 31)
		if !ok {
			return expr
		}
		clock, ok := clockPhrase(minute, hour)
		if !ok {
			return expr
		}
		return fmt.Sprintf("Monthly on day %d at %s", d, clock)
	}

	return expr
}

// clockPhrase formats fixed minute and hour fields as a 12-hour clock time.
func clockPhrase(minute, hour string) (string, bool) {
	m, ok := atoiInRange(minute, 0, 59)
	if !ok {
		return "", false
	}
	h, ok := atoiInRange(hour, 0, 23)
	if !ok {
		return "", false
	}

	period := "AM"
	display := h
	switch {
	case h == 0:
		display = 12
	case h == 12:
		period = "PM"
	case h > 12:
		display = h - 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", display, m, period), true
}

func atoiInRange(s string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}
