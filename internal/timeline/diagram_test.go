package timeline

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vowsmith/planner/internal/models"
)

func TestDiagram_Header(t *testing.T) {
	t.Parallel()

	out := Diagram("Wedding Day", "2026-09-12", nil)
	for _, line := range []string{"gantt", "  title Wedding Day", "  dateFormat HH:mm", "  axisFormat %H:%M"} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("diagram missing header line %q:\n%s", line, out)
		}
	}
}

func TestDiagram_EmptyListProducesPlaceholder(t *testing.T) {
	t.Parallel()

	out := Diagram("Wedding Day", "", nil)
	if out == "" {
		t.Fatal("diagram must never be empty")
	}
	if !strings.Contains(out, "  section Wedding Day\n") {
		t.Errorf("placeholder section missing:\n%s", out)
	}
	if !strings.Contains(out, "  OPEN SCHEDULE :00:00, 1440min\n") {
		t.Errorf("full-day placeholder bar missing:\n%s", out)
	}
}

func TestDiagram_EventLineFormat(t *testing.T) {
	t.Parallel()

	events := Sort([]models.TimelineEvent{
		{Label: "CEREMONY START", Category: models.CategoryCeremony, Minutes: 1050},
		{Label: "GUEST ARRIVAL", Category: models.CategoryCeremony, Minutes: 1020},
	})
	out := Diagram("Wedding Day", "", events)

	lineFormat := regexp.MustCompile(`^  .+ :\d{2}:\d{2}, 30min$`)
	var eventLines int
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.HasPrefix(line, "  section ") || !strings.HasPrefix(line, "  ") {
			continue
		}
		if strings.HasPrefix(line, "  title ") || strings.HasPrefix(line, "  dateFormat") ||
			strings.HasPrefix(line, "  axisFormat") || strings.HasPrefix(line, "  %%") {
			continue
		}
		eventLines++
		if !lineFormat.MatchString(line) {
			t.Errorf("malformed event line %q", line)
		}
	}
	if eventLines != 2 {
		t.Errorf("expected 2 event lines, got %d:\n%s", eventLines, out)
	}
	if !strings.Contains(out, "  GUEST ARRIVAL :17:00, 30min\n") {
		t.Errorf("expected canonical 24-hour time in event line:\n%s", out)
	}
}

func TestDiagram_EscapesColonsInLabels(t *testing.T) {
	t.Parallel()

	events := []models.TimelineEvent{
		{Label: "DJ: SOUND CHECK", Category: models.CategoryCustom, Minutes: 900},
	}
	out := Diagram("Timeline: Final", "", events)

	if strings.Contains(out, "DJ: SOUND CHECK") {
		t.Errorf("raw colon survived in label:\n%s", out)
	}
	if !strings.Contains(out, "DJ#colon; SOUND CHECK :15:00, 30min") {
		t.Errorf("escaped label line missing:\n%s", out)
	}
	if !strings.Contains(out, "title Timeline#colon; Final") {
		t.Errorf("title colon not escaped:\n%s", out)
	}
}

// Section order must track the first appearance of each category in the
// time-sorted list, not a fixed category ranking.
func TestDiagram_SectionOrderFollowsSortedEvents(t *testing.T) {
	t.Parallel()

	events := Sort([]models.TimelineEvent{
		{Label: "LOAD-OUT", Category: models.CategoryClosing, Minutes: 1440},
		{Label: "MIDDAY CUSTOM", Category: models.CategoryCustom, Minutes: 700},
		{Label: "CEREMONY START", Category: models.CategoryCeremony, Minutes: 1050},
		{Label: "HAIR & MAKEUP START", Category: models.CategoryPreCeremony, Minutes: 600},
	})
	out := Diagram("Wedding Day", "", events)

	wantOrder := []string{
		"  section Pre-Ceremony",
		"  section Custom",
		"  section Ceremony",
		"  section Closing",
	}
	last := -1
	for _, section := range wantOrder {
		i := strings.Index(out, section+"\n")
		if i < 0 {
			t.Fatalf("section %q missing:\n%s", section, out)
		}
		if i < last {
			t.Errorf("section %q appears out of order:\n%s", section, out)
		}
		last = i
	}
}
