package timeline

import (
	"fmt"

	"go.uber.org/zap"

	logpkg "github.com/vowsmith/planner/internal/logger"
	"github.com/vowsmith/planner/internal/models"
)

// anchors carries the derived reference times the rule blocks hang events
// off. Every value is an offset chain rooted at the ceremony start; no rule
// computes an absolute clock on its own.
type anchors struct {
	ceremonyStart Clock
	ceremonyEnd   Clock
	dinnerStart   Clock
	dinnerEnd     Clock
	entrance      Clock
	hasEntrance   bool
	foodService   Clock
	danceParty    Clock
	familyDanced  bool
	venueEnd      Clock

	// afterDinnerOffset stacks the optional post-dinner blocks (thank-you
	// toast, first dance, family dances) five minutes apart when more than
	// one of them claims the dinner-end anchor.
	afterDinnerOffset int
}

// rule is one derivation block: it may read and extend the anchors and emits
// zero or more events. Rules never fail; a block whose preference is unset
// returns nil.
type rule func(a *anchors, p models.TimelinePreferences) []models.TimelineEvent

// Generator derives the full wedding-day schedule from a set of preferences.
// Generation is pure and deterministic; the logger only records unparsable
// time text, which falls back to midnight rather than failing.
type Generator struct {
	log *zap.Logger
}

// NewGenerator creates a timeline generator. A nil logger is replaced with a
// no-op logger so the engine stays total.
func NewGenerator(log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{log: log}
}

// Generate produces the complete, time-sorted event list for the given
// (already merged) preferences. Custom events carried in p.Events are
// preserved and merged into the sort; everything else is re-derived from
// scratch. Calling Generate twice with equal preferences yields identical
// lists.
func (g *Generator) Generate(p models.TimelinePreferences) []models.TimelineEvent {
	a := &anchors{ceremonyStart: g.parseClock(p.CeremonyStart, "ceremonyStart")}

	pipeline := []rule{
		g.ceremonyRule,
		hairMakeupRule,
		firstLookRule,
		preCeremonyPhotosRule,
		g.guestArrivalRule,
		cocktailRule,
		entranceRule,
		firstDanceEntranceRule,
		foodServiceRule,
		toastsRule,
		dinnerEndRule,
		thankYouAtDinnerRule,
		firstDanceAfterDinnerRule,
		familyDancesRule,
		dancePartyRule,
		cakeRule,
		dessertRule,
		g.closingRule,
	}

	var events []models.TimelineEvent
	for _, r := range pipeline {
		events = append(events, r(a, p)...)
	}
	events = append(events, g.customEvents(p)...)
	return Sort(events)
}

// parseClock canonicalizes free-form time text, logging and falling back to
// midnight when the text can't be read. Downstream rules never see a parse
// failure.
func (g *Generator) parseClock(text, field string) Clock {
	c, ok := ParseClock(text)
	if !ok && text != "" {
		g.log.Warn("unparsable_time_text",
			zap.String("field", field),
			zap.String("value", logpkg.SanitizeField(text)),
		)
	}
	return c
}

func event(c Clock, label, notes string, cat models.Category) models.TimelineEvent {
	return models.TimelineEvent{
		Time:     c.Display(),
		Label:    label,
		Notes:    notes,
		Category: cat,
		Minutes:  int(c),
	}
}

// ceremonyRule fixes the ceremony start and end anchors and emits both
// events. A house-of-worship ceremony runs 60 minutes, otherwise 30. An
// explicit ceremony end preference wins over the derived duration.
func (g *Generator) ceremonyRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	duration := 30
	if p.HouseOfWorship {
		duration = 60
	}
	a.ceremonyEnd = a.ceremonyStart.Add(duration)
	if p.CeremonyEnd != "" {
		if c, ok := ParseClock(p.CeremonyEnd); ok {
			a.ceremonyEnd = c
		} else {
			g.log.Warn("unparsable_time_text",
				zap.String("field", "ceremonyEnd"),
				zap.String("value", logpkg.SanitizeField(p.CeremonyEnd)),
			)
		}
	}
	return []models.TimelineEvent{
		event(a.ceremonyStart, "CEREMONY START", "", models.CategoryCeremony),
		event(a.ceremonyEnd, "CEREMONY END", "", models.CategoryCeremony),
	}
}

// hairMakeupRule schedules hair and makeup to finish 90 minutes before the
// ceremony. One artist takes 120 minutes per person; at four or more people
// a second artist works in parallel and the total drops to (n/2)*60.
func hairMakeupRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.HairMakeup {
		return nil
	}
	n := p.HairMakeupCount
	if n < 0 {
		n = 0
	}
	total := n * 120
	notes := fmt.Sprintf("%d people, one artist", n)
	if n >= 4 {
		total = (n / 2) * 60
		notes = fmt.Sprintf("%d people, two artists working in parallel", n)
	}
	end := a.ceremonyStart.Add(-90)
	start := end.Add(-total)
	return []models.TimelineEvent{
		event(start.Add(-15), "HAIR & MAKEUP ARRIVAL", "Artists arrive and set up", models.CategoryPreCeremony),
		event(start, "HAIR & MAKEUP START", notes, models.CategoryPreCeremony),
		event(end, "HAIR & MAKEUP DONE", "", models.CategoryPreCeremony),
	}
}

// firstLookRule places the first look three hours before the ceremony, with
// couples portraits following 15 minutes later.
func firstLookRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.FirstLook {
		return nil
	}
	look := a.ceremonyStart.Add(-180)
	return []models.TimelineEvent{
		event(look, "FIRST LOOK", "Private moment before the ceremony", models.CategoryPreCeremony),
		event(look.Add(15), "COUPLES PORTRAITS", "", models.CategoryPreCeremony),
	}
}

// preCeremonyPhotosRule starts photos two hours before the ceremony, or two
// and a half when a first look is also planned.
func preCeremonyPhotosRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.PreCeremonyPhotos {
		return nil
	}
	offset := -120
	if p.FirstLook {
		offset = -150
	}
	start := a.ceremonyStart.Add(offset)
	return []models.TimelineEvent{
		event(start, "WEDDING PARTY PHOTOS", "", models.CategoryPreCeremony),
		event(start.Add(30), "FAMILY PHOTOS", "", models.CategoryPreCeremony),
		event(start.Add(60), "PHOTO BUFFER", "Slack for runovers and candids", models.CategoryPreCeremony),
		event(start.Add(75), "PHOTOS DONE", "", models.CategoryPreCeremony),
	}
}

// guestArrivalRule defaults guests to 30 minutes before the ceremony unless
// the couple set an explicit arrival time.
func (g *Generator) guestArrivalRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	arrival := a.ceremonyStart.Add(-30)
	if p.GuestArrival != "" {
		arrival = g.parseClock(p.GuestArrival, "guestArrival")
	}
	return []models.TimelineEvent{
		event(arrival, "GUEST ARRIVAL", "", models.CategoryCeremony),
	}
}

// cocktailRule runs a fixed 60-minute cocktail hour from ceremony end and
// nudges guests toward their seats 10 minutes before it closes. Dinner
// anchors to cocktail end when enabled, otherwise straight to ceremony end.
func cocktailRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	a.dinnerStart = a.ceremonyEnd
	if !p.CocktailHour {
		return nil
	}
	start := a.ceremonyEnd
	end := start.Add(60)
	a.dinnerStart = end
	return []models.TimelineEvent{
		event(start, "COCKTAIL START", "", models.CategoryReception),
		event(end.Add(-10), "BEGIN SEATING", "Staff nudge guests toward tables", models.CategoryReception),
		event(end, "COCKTAIL END", "", models.CategoryReception),
	}
}

// entranceRule places the grand entrance 75 minutes after ceremony end when
// there is a cocktail hour to fill the gap, 15 minutes after otherwise.
func entranceRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.Entrance {
		return nil
	}
	offset := 15
	if p.CocktailHour {
		offset = 75
	}
	a.entrance = a.ceremonyEnd.Add(offset)
	a.hasEntrance = true
	return []models.TimelineEvent{
		event(a.entrance, "GRAND ENTRANCE", "Wedding party introduced", models.CategoryReception),
	}
}

// firstDanceEntranceRule handles the first dance when the couple chose to
// dance straight off their entrance.
func firstDanceEntranceRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.FirstDance || p.FirstDanceTiming != models.FirstDanceAtEntrance {
		return nil
	}
	at := a.dinnerStart.Add(15)
	if a.hasEntrance {
		at = a.entrance.Add(5)
	}
	return []models.TimelineEvent{
		event(at, "FIRST DANCE", "", models.CategoryReception),
	}
}

// foodServiceRule starts food 15 minutes after the entrance when there is
// one, otherwise 15 minutes after dinner start. The entrance-adjusted time
// always wins; the food-service anchor is set either way because toasts hang
// off it.
func foodServiceRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if a.hasEntrance {
		a.foodService = a.entrance.Add(15)
	} else {
		a.foodService = a.dinnerStart.Add(15)
	}
	if p.DinnerService == "" {
		return nil
	}
	notes := ""
	switch p.DinnerService {
	case models.DinnerServiceBuffet:
		notes = "Buffet opens, tables released in order"
	case models.DinnerServicePlated:
		notes = "Plated service begins"
	case models.DinnerServiceFamily:
		notes = "Family-style platters to the tables"
	}
	return []models.TimelineEvent{
		event(a.dinnerStart, "DINNER START", "", models.CategoryReception),
		event(a.foodService, "FOOD SERVICE", notes, models.CategoryReception),
	}
}

// toastsRule schedules toasts 30 minutes into food service, five minutes per
// speech, with the couple's thank-you appended when they chose to fold it in.
func toastsRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if p.Speeches <= 0 {
		return nil
	}
	start := a.foodService.Add(30)
	duration := 5 * p.Speeches
	events := []models.TimelineEvent{
		event(start, "TOASTS", fmt.Sprintf("%d speeches, about %d minutes", p.Speeches, duration), models.CategoryReception),
	}
	if p.ThankYouToast && p.ThankYouTiming == models.ToastWithToasts {
		events = append(events,
			event(start.Add(duration), "THANK YOU TOAST", "Couple thanks their guests", models.CategoryReception))
	}
	return events
}

// dinnerEndRule closes dinner 90 minutes after it starts for family style,
// 120 for buffet and plated alike. The dinner-end anchor is set even when no
// dinner service was chosen so later blocks stay anchored.
func dinnerEndRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	a.dinnerEnd = a.dinnerStart
	if p.DinnerService == "" {
		return nil
	}
	duration := 120
	if p.DinnerService == models.DinnerServiceFamily {
		duration = 90
	}
	a.dinnerEnd = a.dinnerStart.Add(duration)
	return []models.TimelineEvent{
		event(a.dinnerEnd, "DINNER END", "", models.CategoryReception),
	}
}

// claimAfterDinner hands out the next post-dinner slot: the first claimant
// lands on dinner end, each later one five minutes after the previous.
func (a *anchors) claimAfterDinner() Clock {
	at := a.dinnerEnd.Add(a.afterDinnerOffset)
	a.afterDinnerOffset += 5
	return at
}

func thankYouAtDinnerRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.ThankYouToast || p.ThankYouTiming != models.ToastAtDinner {
		return nil
	}
	return []models.TimelineEvent{
		event(a.claimAfterDinner(), "THANK YOU TOAST", "Couple thanks their guests", models.CategoryReception),
	}
}

func firstDanceAfterDinnerRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.FirstDance || p.FirstDanceTiming != models.FirstDanceAfterDinner {
		return nil
	}
	return []models.TimelineEvent{
		event(a.claimAfterDinner(), "FIRST DANCE", "", models.CategoryReception),
	}
}

func familyDancesRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if p.FamilyDances <= 0 {
		return nil
	}
	a.familyDanced = true
	return []models.TimelineEvent{
		event(a.claimAfterDinner(), "FAMILY DANCES",
			fmt.Sprintf("%d dances", p.FamilyDances), models.CategoryReception),
	}
}

// dancePartyRule opens the floor 10 minutes after dinner end when family
// dances ran, immediately otherwise.
func dancePartyRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	a.danceParty = a.dinnerEnd
	if a.familyDanced {
		a.danceParty = a.dinnerEnd.Add(10)
	}
	if p.DinnerService == "" && !a.familyDanced {
		return nil
	}
	return []models.TimelineEvent{
		event(a.danceParty, "DANCE PARTY", "Open dance floor", models.CategoryReception),
	}
}

func cakeRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.CakeCutting {
		return nil
	}
	return []models.TimelineEvent{
		event(a.danceParty.Add(20), "CAKE CUTTING", "", models.CategoryReception),
	}
}

// dessertRule lands dessert alongside the cake cutting when both are
// planned (same +20 offset, intentionally simultaneous), 30 minutes into the
// dance party otherwise.
func dessertRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	if !p.Dessert {
		return nil
	}
	offset := 30
	if p.CakeCutting {
		offset = 20
	}
	notes := "Dessert served"
	switch p.DessertService {
	case models.DessertServiceTable:
		notes = "Dessert delivered to tables"
	case models.DessertServiceBuffet:
		notes = "Dessert buffet opens"
	case models.DessertServicePassed:
		notes = "Passed desserts circulate"
	case models.DessertServiceOther:
		notes = "Dessert served"
	}
	return []models.TimelineEvent{
		event(a.danceParty.Add(offset), "DESSERT", notes, models.CategoryReception),
	}
}

// closingRule winds the night down an hour before the venue closes, with
// load-out exactly at the venue end time. A venue end at or before the
// ceremony start is read as next-day so the closing events keep sorting
// after the evening.
func (g *Generator) closingRule(a *anchors, p models.TimelinePreferences) []models.TimelineEvent {
	a.venueEnd = g.parseClock(p.VenueEnd, "venueEnd")
	if a.venueEnd <= a.ceremonyStart {
		a.venueEnd = a.venueEnd.Add(minutesPerDay)
	}
	loadOutNotes := "Vendors break down and clear the venue"
	if p.Transportation {
		loadOutNotes = "Guest transportation departs; vendors break down and clear the venue"
	}
	return []models.TimelineEvent{
		event(a.venueEnd.Add(-60), "EVENT END", "Last dance and send-off", models.CategoryClosing),
		event(a.venueEnd, "LOAD-OUT", loadOutNotes, models.CategoryClosing),
	}
}

// customEvents re-parses and preserves user-added events across a
// regeneration. IDs are assigned at the entry boundary, never here, so
// equal preferences always regenerate byte-identical lists.
func (g *Generator) customEvents(p models.TimelinePreferences) []models.TimelineEvent {
	custom := p.CustomEvents()
	out := make([]models.TimelineEvent, 0, len(custom))
	for _, e := range custom {
		c, ok := ParseClock(e.Time)
		if !ok {
			g.log.Warn("unparsable_time_text",
				zap.String("field", "customEvent"),
				zap.String("value", logpkg.SanitizeField(e.Time)),
			)
		}
		e.Minutes = int(c)
		e.Time = c.Display()
		e.Category = models.CategoryCustom
		out = append(out, e)
	}
	return out
}
