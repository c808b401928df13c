package timeline

import (
	"sort"

	"github.com/vowsmith/planner/internal/models"
)

// Sort returns a copy of events stable-sorted ascending by the signed minute
// key. Equal times keep their generation order, which is what pins the
// ceremony-start/ceremony-end style pairs and the deliberately simultaneous
// cake/dessert slot.
func Sort(events []models.TimelineEvent) []models.TimelineEvent {
	sorted := make([]models.TimelineEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Minutes < sorted[j].Minutes
	})
	return sorted
}

// CategoryGroup is one display section: a category and its events in time
// order.
type CategoryGroup struct {
	Name   models.Category
	Events []models.TimelineEvent
}

// GroupByCategory sections an already time-sorted event list. Section order
// is the order categories first appear in the sorted list, not a fixed
// ranking, so grouping must run after the sort.
func GroupByCategory(sorted []models.TimelineEvent) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[models.Category]int)
	for _, e := range sorted {
		i, seen := index[e.Category]
		if !seen {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, CategoryGroup{Name: e.Category})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	return groups
}
