package validation

import (
	"task-list/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithValidator creates a task validator backed by v
func NewTaskValidatorWithValidator(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateTitle validates a task title for creation
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if max := tv.validator.TitleMaxLength(); !tv.validator.IsWithinMaxLength(trimmed, max) {
		validationError.AddInvalidLengthError("title", trimmed, max)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateParticipants checks every index against the directory
func (tv *TaskValidator) ValidateParticipants(participants domain.ParticipantSet, directory *domain.Directory) error {
	validationError := NewValidationError()

	for _, index := range participants.Indices() {
		if !directory.Contains(index) {
			validationError.AddUnknownReferenceError("participants", index)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateDraft validates every field of a draft about to be committed.
// Unset enumerations are accepted since they resolve to their defaults.
func (tv *TaskValidator) ValidateDraft(draft domain.Draft, directory *domain.Directory) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTitle(draft.Title))

	if !draft.Category.OrDefault().IsValid() {
		validationError.AddInvalidValueError("category", draft.Category, "not a recognised category")
	}
	if !draft.Priority.OrDefault().IsValid() {
		validationError.AddInvalidValueError("priority", draft.Priority, "not a recognised priority")
	}

	validationError.Merge(tv.ValidateParticipants(draft.Participants, directory))

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTitle returns the cleaned title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
