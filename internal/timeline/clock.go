package timeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Clock is a time of day in signed minutes since midnight of the wedding day.
//
// It is deliberately not reduced modulo 1440 during generation or sorting:
// closing events derived from a venue end time that wraps past midnight keep
// increasing monotonically, so "load-out at 00:00" sorts after the evening
// instead of before it. Reduction to a 24-hour clock happens only when
// formatting for display or serialization.
type Clock int

const minutesPerDay = 1440

// Add offsets the clock by delta minutes. Negative deltas and results past
// 1440 are fine; there is no wraparound here.
func (c Clock) Add(delta int) Clock {
	return c + Clock(delta)
}

// HHMM renders the clock as canonical 24-hour "HH:MM" text, reduced to
// [00:00, 24:00). Negative clocks reduce the same way, so 23:00 minus two
// hours is 21:00 and midnight minus one minute is 23:59.
func (c Clock) HHMM() string {
	m := int(c) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Display renders the clock in 12-hour "h:mm AM/PM" form. Hour 0 is 12 AM
// and hour 12 is 12 PM.
func (c Clock) Display() string {
	m := int(c) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	hour := m / 60
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, m%60, meridiem)
}

// clockPattern matches an hour, optional minutes, and optional meridiem
// anywhere in free-form text ("5pm", "5:30 P.M.", "17:30", "around 4").
var clockPattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*([ap])?\.?m?\.?`)

// ParseClock extracts the first plausible time of day from free-form text.
// It accepts canonical "HH:MM", "h[:mm] am|pm" in any casing or punctuation,
// and a bare hour. The boolean is false when nothing plausible was found;
// callers fall back to midnight and log, they never abort the pipeline.
func ParseClock(text string) (Clock, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 0, false
	}
	for _, m := range clockPattern.FindAllStringSubmatch(lower, -1) {
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		minute := 0
		if m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute > 59 {
				continue
			}
		}
		switch m[3] {
		case "a":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour == 12 {
				hour = 0
			}
		case "p":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour != 12 {
				hour += 12
			}
		default:
			if hour > 23 {
				continue
			}
		}
		return Clock(hour*60 + minute), true
	}
	return 0, false
}
