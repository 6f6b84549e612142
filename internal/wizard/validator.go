package wizard

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

// DraftValidator applies field-level rules to wizard input. Step
// completeness gating lives on the model; this checks the shape of what
// the customer typed.
type DraftValidator struct {
	validate *validator.Validate
}

func NewDraftValidator() *DraftValidator {
	return &DraftValidator{validate: validator.New()}
}

func (v *DraftValidator) ValidateContact(contact *model.ContactInfo) error {
	if err := v.validate.Struct(contact); err != nil {
		return apperrors.Validation("Invalid contact details", fieldDetails(err))
	}
	return nil
}

func (v *DraftValidator) ValidateSegment(segment *model.TripSegment) error {
	if err := v.validate.Struct(segment); err != nil {
		return apperrors.Validation("Invalid trip details", fieldDetails(err))
	}
	return nil
}

func fieldDetails(err error) map[string]any {
	details := make(map[string]any)
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
