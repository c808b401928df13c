package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vowsmith/planner/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for the preference enums
	// These should never fail in normal operation
	register := map[string]validator.Func{
		"dinner_service":     validateDinnerService,
		"dessert_service":    validateDessertService,
		"first_dance_timing": validateFirstDanceTiming,
		"toast_timing":       validateToastTiming,
	}
	for tag, fn := range register {
		if err := Validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register %s validator: %v", tag, err))
		}
	}
}

func validateDinnerService(fl validator.FieldLevel) bool {
	switch models.DinnerService(fl.Field().String()) {
	case models.DinnerServiceBuffet, models.DinnerServicePlated, models.DinnerServiceFamily:
		return true
	default:
		return false
	}
}

func validateDessertService(fl validator.FieldLevel) bool {
	switch models.DessertService(fl.Field().String()) {
	case models.DessertServiceTable, models.DessertServiceBuffet, models.DessertServicePassed, models.DessertServiceOther:
		return true
	default:
		return false
	}
}

func validateFirstDanceTiming(fl validator.FieldLevel) bool {
	switch models.FirstDanceTiming(fl.Field().String()) {
	case models.FirstDanceAtEntrance, models.FirstDanceAfterDinner:
		return true
	default:
		return false
	}
}

func validateToastTiming(fl validator.FieldLevel) bool {
	switch models.ToastTiming(fl.Field().String()) {
	case models.ToastWithToasts, models.ToastAtDinner:
		return true
	default:
		return false
	}
}

// ValidateDinnerService validates a DinnerService string value
func ValidateDinnerService(value string) error {
	switch models.DinnerService(value) {
	case models.DinnerServiceBuffet, models.DinnerServicePlated, models.DinnerServiceFamily:
		return nil
	default:
		return fmt.Errorf("invalid dinnerService: %s (must be 'buffet', 'plated', or 'family')", value)
	}
}

// ValidateDessertService validates a DessertService string value
func ValidateDessertService(value string) error {
	switch models.DessertService(value) {
	case models.DessertServiceTable, models.DessertServiceBuffet, models.DessertServicePassed, models.DessertServiceOther:
		return nil
	default:
		return fmt.Errorf("invalid dessertService: %s (must be 'table', 'buffet', 'passed', or 'other')", value)
	}
}
