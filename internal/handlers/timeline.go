package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vowsmith/planner/internal/models"
	"github.com/vowsmith/planner/internal/share"
	"github.com/vowsmith/planner/internal/timeline"
	"github.com/vowsmith/planner/internal/validation"
)

// TimelineHandler handles timeline generation and share-link requests
type TimelineHandler struct {
	gen     *timeline.Generator
	baseURL string
	logger  *zap.Logger
}

// NewTimelineHandler creates a new timeline handler. baseURL is used to
// build absolute share links.
func NewTimelineHandler(gen *timeline.Generator, baseURL string, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		gen:     gen,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// RegisterRoutes registers timeline routes on the given router
// The router should already have the /timeline prefix
func (h *TimelineHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/generate", h.GenerateTimeline).Methods("POST")
	r.HandleFunc("/share", h.CreateShareLink).Methods("POST")
	r.HandleFunc("/share/{code}", h.ResolveShareLink).Methods("GET")
}

// GenerateTimelineResponse is the response for generate and share-resolve:
// the fully merged preferences, the derived schedule, and its diagram text.
type GenerateTimelineResponse struct {
	Preferences models.TimelinePreferences `json:"preferences"`
	Events      []models.TimelineEvent     `json:"events"`
	Diagram     string                     `json:"diagram"`
}

// ShareLinkResponse carries a newly minted share token.
type ShareLinkResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

// GenerateTimeline derives the wedding-day schedule from a partial
// preferences snapshot. The body is merged over defaults before any rule
// runs; unreadable time text falls back to midnight rather than failing, so
// the only client errors are malformed JSON and invalid enum values.
func (h *TimelineHandler) GenerateTimeline(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.decodePreferences(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.build(prefs))
}

// CreateShareLink encodes the merged preferences into a stateless share
// token. Nothing is stored; the token itself is the snapshot.
func (h *TimelineHandler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.decodePreferences(w, r)
	if !ok {
		return
	}

	code, err := share.Encode(prefs)
	if err != nil {
		h.logger.Error("failed_to_encode_share_token", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to create share link")
		return
	}

	respondJSON(w, http.StatusCreated, ShareLinkResponse{
		Code: code,
		URL:  fmt.Sprintf("%s/api/v1/timeline/share/%s", h.baseURL, code),
	})
}

// ResolveShareLink decodes a share token and regenerates the timeline from
// the embedded snapshot.
func (h *TimelineHandler) ResolveShareLink(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	prefs, err := share.Decode(code)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid share code")
		return
	}
	respondJSON(w, http.StatusOK, h.build(prefs))
}

// decodePreferences reads a partial snapshot from the request body, merges
// it over the defaults, and validates the enum fields. It writes the error
// response itself and returns ok=false on failure.
func (h *TimelineHandler) decodePreferences(w http.ResponseWriter, r *http.Request) (models.TimelinePreferences, bool) {
	prefs := models.DefaultPreferences()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&prefs); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return prefs, false
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return prefs, false
	}

	if err := validation.Validate.Struct(prefs); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Validation failed: %s", fieldError.Error()))
				return prefs, false
			}
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return prefs, false
	}

	// ID assignment happens here, not in the generator, so generation stays
	// deterministic for a given snapshot
	prefs.EnsureEventIDs()

	return prefs, true
}

func (h *TimelineHandler) build(prefs models.TimelinePreferences) GenerateTimelineResponse {
	events := h.gen.Generate(prefs)
	prefs.Events = events
	return GenerateTimelineResponse{
		Preferences: prefs,
		Events:      events,
		Diagram:     timeline.Diagram(diagramTitle(prefs), prefs.WeddingDate, events),
	}
}

func diagramTitle(prefs models.TimelinePreferences) string {
	if prefs.CeremonyVenue != "" {
		return "Wedding Day - " + prefs.CeremonyVenue
	}
	return "Wedding Day"
}
