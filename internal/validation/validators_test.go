package validation

import (
	"testing"

	"github.com/vowsmith/planner/internal/models"
)

func TestValidateDinnerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"buffet", "buffet", true},
		{"plated", "plated", true},
		{"family", "family", true},
		{"empty", "", false},
		{"unknown", "potluck", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateDinnerService(tt.value)
			if tt.valid && err != nil {
				t.Errorf("Expected %q to be valid, got %v", tt.value, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Expected %q to be invalid", tt.value)
			}
		})
	}
}

func TestValidateDessertService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"table", "table", true},
		{"buffet", "buffet", true},
		{"passed", "passed", true},
		{"other", "other", true},
		{"unknown", "fondue", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateDessertService(tt.value)
			if tt.valid && err != nil {
				t.Errorf("Expected %q to be valid, got %v", tt.value, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Expected %q to be invalid", tt.value)
			}
		})
	}
}

func TestStructValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prefs models.TimelinePreferences
		valid bool
	}{
		{
			name:  "defaults pass",
			prefs: models.DefaultPreferences(),
			valid: true,
		},
		{
			name: "valid enums pass",
			prefs: models.TimelinePreferences{
				DinnerService:    models.DinnerServiceFamily,
				DessertService:   models.DessertServicePassed,
				FirstDanceTiming: models.FirstDanceAfterDinner,
				ThankYouTiming:   models.ToastAtDinner,
			},
			valid: true,
		},
		{
			name:  "empty enums are omitted",
			prefs: models.TimelinePreferences{},
			valid: true,
		},
		{
			name:  "invalid dinner service fails",
			prefs: models.TimelinePreferences{DinnerService: "banquet"},
			valid: false,
		},
		{
			name:  "invalid first dance timing fails",
			prefs: models.TimelinePreferences{FirstDanceTiming: "midnight"},
			valid: false,
		},
		{
			name:  "negative speeches fail",
			prefs: models.TimelinePreferences{Speeches: -1},
			valid: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate.Struct(tt.prefs)
			if tt.valid && err != nil {
				t.Errorf("Expected valid preferences, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Expected validation to fail")
			}
		})
	}
}
