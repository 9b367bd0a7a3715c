package validator

import (
	"log"

	"siteworks_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs model-derived validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-worker-role': the value is a member of the closed worker role set.
	mustRegister("is-worker-role", validateWorkerRole)
}

func validateWorkerRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	_, ok := models.ParseRole(value)
	return ok
}
