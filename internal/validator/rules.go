package validator

import (
	"hrnexus_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds domain validation rules.
func registerCustomRules(v *validator.Validate) error {
	// candidatestatus: value must be a known pipeline state.
	return v.RegisterValidation("candidatestatus", func(fl validator.FieldLevel) bool {
		return models.ValidCandidateStatus(models.CandidateStatus(fl.Field().String()))
	})
}
