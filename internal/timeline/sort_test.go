package timeline

import (
	"testing"

	"github.com/vowsmith/planner/internal/models"
)

func TestSort_StableOnEqualTimes(t *testing.T) {
	t.Parallel()

	events := []models.TimelineEvent{
		{Label: "CAKE CUTTING", Minutes: 1200},
		{Label: "DESSERT", Minutes: 1200},
		{Label: "GUEST ARRIVAL", Minutes: 1020},
	}
	sorted := Sort(events)

	if sorted[0].Label != "GUEST ARRIVAL" {
		t.Errorf("first event = %q, want GUEST ARRIVAL", sorted[0].Label)
	}
	if sorted[1].Label != "CAKE CUTTING" || sorted[2].Label != "DESSERT" {
		t.Errorf("equal-time pair reordered: %q then %q", sorted[1].Label, sorted[2].Label)
	}
	if events[0].Label != "CAKE CUTTING" {
		t.Error("Sort must not mutate its input")
	}
}

func TestSort_SignedMinutesPastMidnightSortLast(t *testing.T) {
	t.Parallel()

	sorted := Sort([]models.TimelineEvent{
		{Label: "LOAD-OUT", Minutes: 1440}, // 00:00 next day
		{Label: "EVENT END", Minutes: 1380},
	})
	if sorted[len(sorted)-1].Label != "LOAD-OUT" {
		t.Errorf("wrapped event should sort last, got %q", sorted[len(sorted)-1].Label)
	}
	// The 24-hour text would sort this first lexicographically; the signed
	// key is what keeps the night in order.
	if Clock(sorted[1].Minutes).HHMM() >= Clock(sorted[0].Minutes).HHMM() {
		t.Log("lexicographic HH:MM comparison would misplace the wrapped event, as expected")
	}
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	sorted := Sort([]models.TimelineEvent{
		{Label: "HAIR & MAKEUP START", Category: models.CategoryPreCeremony, Minutes: 600},
		{Label: "CEREMONY START", Category: models.CategoryCeremony, Minutes: 1050},
		{Label: "FIRST LOOK", Category: models.CategoryPreCeremony, Minutes: 870},
		{Label: "LOAD-OUT", Category: models.CategoryClosing, Minutes: 1440},
	})
	groups := GroupByCategory(sorted)

	wantNames := []models.Category{
		models.CategoryPreCeremony,
		models.CategoryCeremony,
		models.CategoryClosing,
	}
	if len(groups) != len(wantNames) {
		t.Fatalf("expected %d groups, got %d", len(wantNames), len(groups))
	}
	for i, want := range wantNames {
		if groups[i].Name != want {
			t.Errorf("group %d = %q, want %q", i, groups[i].Name, want)
		}
	}
	if len(groups[0].Events) != 2 {
		t.Errorf("Pre-Ceremony group has %d events, want 2", len(groups[0].Events))
	}
	if groups[0].Events[0].Label != "HAIR & MAKEUP START" {
		t.Errorf("group events out of time order: %q first", groups[0].Events[0].Label)
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	t.Parallel()

	if groups := GroupByCategory(nil); len(groups) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(groups))
	}
}
