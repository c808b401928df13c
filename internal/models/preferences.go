package models

import (
	"github.com/google/uuid"
)

// DinnerService is the dinner service style
type DinnerService string

const (
	DinnerServiceBuffet DinnerService = "buffet"
	DinnerServicePlated DinnerService = "plated"
	DinnerServiceFamily DinnerService = "family"
)

// DessertService is how dessert reaches the guests
type DessertService string

const (
	DessertServiceTable  DessertService = "table"
	DessertServiceBuffet DessertService = "buffet"
	DessertServicePassed DessertService = "passed"
	DessertServiceOther  DessertService = "other"
)

// FirstDanceTiming says when the first dance happens
type FirstDanceTiming string

const (
	FirstDanceAtEntrance  FirstDanceTiming = "entrance"
	FirstDanceAfterDinner FirstDanceTiming = "after_dinner"
)

// ToastTiming says when the couple's thank-you toast happens
type ToastTiming string

const (
	ToastWithToasts ToastTiming = "toasts"
	ToastAtDinner   ToastTiming = "dinner"
)

// TimelinePreferences holds every questionnaire answer the timeline engine
// derives from. Time fields are free-form clock text ("5pm", "17:30"); the
// engine canonicalizes them and falls back to midnight when they can't be
// read. Events carries the last generated list plus any user-added custom
// events; only entries tagged Custom survive a regeneration.
type TimelinePreferences struct {
	WeddingDate    string `json:"weddingDate,omitempty" yaml:"wedding_date,omitempty"`
	CeremonyVenue  string `json:"ceremonyVenue,omitempty" yaml:"ceremony_venue,omitempty"`
	ReceptionVenue string `json:"receptionVenue,omitempty" yaml:"reception_venue,omitempty"`
	SameVenue      bool   `json:"sameVenue,omitempty" yaml:"same_venue,omitempty"`

	CeremonyStart  string `json:"ceremonyStart,omitempty" yaml:"ceremony_start,omitempty"`
	CeremonyEnd    string `json:"ceremonyEnd,omitempty" yaml:"ceremony_end,omitempty"`
	GuestArrival   string `json:"guestArrival,omitempty" yaml:"guest_arrival,omitempty"`
	HouseOfWorship bool   `json:"houseOfWorship,omitempty" yaml:"house_of_worship,omitempty"`

	HairMakeup      bool `json:"hairMakeup,omitempty" yaml:"hair_makeup,omitempty"`
	HairMakeupCount int  `json:"hairMakeupCount,omitempty" yaml:"hair_makeup_count,omitempty" validate:"omitempty,min=0"`

	FirstLook         bool `json:"firstLook,omitempty" yaml:"first_look,omitempty"`
	PreCeremonyPhotos bool `json:"preCeremonyPhotos,omitempty" yaml:"pre_ceremony_photos,omitempty"`

	CocktailHour  bool          `json:"cocktailHour,omitempty" yaml:"cocktail_hour,omitempty"`
	DinnerService DinnerService `json:"dinnerService,omitempty" yaml:"dinner_service,omitempty" validate:"omitempty,dinner_service"`

	Entrance         bool             `json:"entrance,omitempty" yaml:"entrance,omitempty"`
	FirstDance       bool             `json:"firstDance,omitempty" yaml:"first_dance,omitempty"`
	FirstDanceTiming FirstDanceTiming `json:"firstDanceTiming,omitempty" yaml:"first_dance_timing,omitempty" validate:"omitempty,first_dance_timing"`
	FamilyDances     int              `json:"familyDances,omitempty" yaml:"family_dances,omitempty" validate:"omitempty,min=0"`

	Speeches       int         `json:"speeches,omitempty" yaml:"speeches,omitempty" validate:"omitempty,min=0"`
	ThankYouToast  bool        `json:"thankYouToast,omitempty" yaml:"thank_you_toast,omitempty"`
	ThankYouTiming ToastTiming `json:"thankYouTiming,omitempty" yaml:"thank_you_timing,omitempty" validate:"omitempty,toast_timing"`

	CakeCutting    bool           `json:"cakeCutting,omitempty" yaml:"cake_cutting,omitempty"`
	Dessert        bool           `json:"dessert,omitempty" yaml:"dessert,omitempty"`
	DessertService DessertService `json:"dessertService,omitempty" yaml:"dessert_service,omitempty" validate:"omitempty,dessert_service"`

	VenueEnd       string `json:"venueEnd,omitempty" yaml:"venue_end,omitempty"`
	Transportation bool   `json:"transportation,omitempty" yaml:"transportation,omitempty"`

	Events []TimelineEvent `json:"events,omitempty" yaml:"events,omitempty"`
}

// DefaultPreferences returns the baseline every partial snapshot is merged
// into. The merge happens exactly once at the entry boundary (HTTP handler,
// CLI, or share decode): decode the partial input over this value and hand
// the result to the engine. No rule downstream consults a default.
func DefaultPreferences() TimelinePreferences {
	return TimelinePreferences{
		CeremonyStart:    "16:00",
		VenueEnd:         "22:00",
		FirstDanceTiming: FirstDanceAtEntrance,
		ThankYouTiming:   ToastWithToasts,
	}
}

// EnsureEventIDs assigns an ID to any custom event that lacks one. It runs
// once at the entry boundary alongside the defaults merge; the generator
// never mints IDs, so equal snapshots regenerate byte-identical lists.
func (p *TimelinePreferences) EnsureEventIDs() {
	for i := range p.Events {
		if p.Events[i].Category == CategoryCustom && p.Events[i].ID == "" {
			p.Events[i].ID = uuid.NewString()
		}
	}
}

// CustomEvents returns the user-added events that must survive regeneration.
func (p TimelinePreferences) CustomEvents() []TimelineEvent {
	var custom []TimelineEvent
	for _, e := range p.Events {
		if e.Category == CategoryCustom {
			custom = append(custom, e)
		}
	}
	return custom
}
