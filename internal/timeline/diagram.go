package timeline

import (
	"strings"

	"github.com/vowsmith/planner/internal/models"
)

// Diagram output is a gantt-style text description consumed by the rendering
// widget: a header block, then one section per category in first-appearance
// order, then one line per event. Every event gets a fixed nominal duration
// so the renderer draws uniform bars; real durations live in the event times
// themselves.

const (
	// eventBarLength is the nominal duration written for every event line.
	eventBarLength = "30min"
	// fullDayLength is the duration of the empty-schedule placeholder bar.
	fullDayLength = "1440min"
)

// Diagram serializes a sorted event list into the timeline description
// format. The output is byte-deterministic for a given input. An empty event
// list produces a single full-day placeholder section so the renderer never
// receives an empty diagram.
func Diagram(title, date string, sorted []models.TimelineEvent) string {
	var b strings.Builder
	b.WriteString("gantt\n")
	b.WriteString("  title " + escapeLabel(title) + "\n")
	if date != "" {
		b.WriteString("  %% " + escapeLabel(date) + "\n")
	}
	b.WriteString("  dateFormat HH:mm\n")
	b.WriteString("  axisFormat %H:%M\n")

	if len(sorted) == 0 {
		b.WriteString("  section Wedding Day\n")
		b.WriteString("  OPEN SCHEDULE :00:00, " + fullDayLength + "\n")
		return b.String()
	}

	for _, group := range GroupByCategory(sorted) {
		b.WriteString("  section " + escapeLabel(string(group.Name)) + "\n")
		for _, e := range group.Events {
			b.WriteString("  " + escapeLabel(e.Label) + " :" + Clock(e.Minutes).HHMM() + ", " + eventBarLength + "\n")
		}
	}
	return b.String()
}

// escapeLabel neutralizes colons inside labels so they can't be misread as
// the time/duration separator.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, ":", "#colon;")
}
