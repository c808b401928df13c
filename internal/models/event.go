package models

// Category groups timeline events for display. Categories do not affect
// scheduling; they only control how the table and diagram are sectioned.
type Category string

const (
	CategoryPreCeremony Category = "Pre-Ceremony"
	CategoryCeremony    Category = "Ceremony"
	CategoryReception   Category = "Reception"
	CategoryClosing     Category = "Closing"
	CategoryCustom      Category = "Custom"
)

// TimelineEvent is a single entry on the wedding-day schedule.
//
// Minutes is the signed scheduling key: minutes since midnight of the wedding
// day, allowed to run past 1440 so closing events that wrap midnight still
// sort after the evening. Time is the 12-hour display form derived from it.
// Events are value types; every regeneration produces a fresh list.
type TimelineEvent struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Time     string   `json:"time" yaml:"time"`
	Label    string   `json:"label" yaml:"label"`
	Notes    string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Category Category `json:"category" yaml:"category"`
	Minutes  int      `json:"minutes" yaml:"minutes"`
}
