package utils

import (
	"strings"

	"github.com/metodo21/app-client/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Error renders the result as a single message, for surfacing to the user.
func (vr *ValidationResult) Error() string {
	if vr.IsValid {
		return ""
	}
	parts := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// ValidateProfileUpdate validates a partial profile update before it is
// sent to the server. Present numeric fields must be strictly positive.
func ValidateProfileUpdate(input models.ProfileUpdate) *ValidationResult {
	result := NewValidationResult()

	if input.Age != nil && (*input.Age <= 0 || *input.Age > 120) {
		result.AddError("age", "age must be between 1 and 120")
	}
	if input.Weight != nil && *input.Weight <= 0 {
		result.AddError("weight", "weight must be positive")
	}
	if input.Height != nil && *input.Height <= 0 {
		result.AddError("height", "height must be positive")
	}
	if input.Waist != nil && *input.Waist <= 0 {
		result.AddError("waist", "waist must be positive")
	}
	if input.Hip != nil && *input.Hip <= 0 {
		result.AddError("hip", "hip must be positive")
	}
	if input.Chest != nil && *input.Chest <= 0 {
		result.AddError("chest", "chest must be positive")
	}

	return result
}

// ValidateGoals validates the goal-setting answers.
func ValidateGoals(input models.UserGoalsCreate) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(input.MetaPrincipal) == "" {
		result.AddError("meta_principal", "meta_principal is required")
	}
	if strings.TrimSpace(input.DesejoTransformar) == "" {
		result.AddError("desejo_transformar", "desejo_transformar is required")
	}
	if strings.TrimSpace(input.SentimentoDesejado) == "" {
		result.AddError("sentimento_desejado", "sentimento_desejado is required")
	}
	if strings.TrimSpace(input.Compromisso) == "" {
		result.AddError("compromisso", "compromisso is required")
	}

	return result
}

// ValidateCodeQuantity validates the batch size for activation-code
// generation. Rejected before any network call.
func ValidateCodeQuantity(quantity int) *ValidationResult {
	result := NewValidationResult()

	if quantity < models.MinActivationCodes || quantity > models.MaxActivationCodes {
		result.AddError("quantity", "quantity must be between 1 and 100")
	}

	return result
}
