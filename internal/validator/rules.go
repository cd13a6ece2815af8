package validator

import (
	"log"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/regions"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain rules on the validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("job_duration", validateJobDuration)
	mustRegister("state_code", validateStateCode)
	mustRegister("country_option", validateCountryOption)
}

func validateJobDuration(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 6, 12:
		return true
	default:
		return false
	}
}

func validateStateCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := regions.Resolve(string(models.CountryUnitedStates), value)
	return ok
}

func validateCountryOption(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CountryOption(value) {
	case models.CountryUnitedStates, models.CountryInternational:
		return true
	default:
		return false
	}
}
