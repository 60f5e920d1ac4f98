package requests

import (
	"strings"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
	"github.com/sjpathak2211/ai-dashboard/internal/auth"
)

// ValidateForSubmission checks every constraint and reports all violations
// at once, keyed by field name. An empty result means the fields are valid.
func ValidateForSubmission(f SubmissionFields) apperr.ValidationErrors {
	errs := validateCommon(f)
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	}
	return errs
}

// ValidateForEdit mirrors submission validation except for title, which is
// immutable after creation and therefore not part of the edit surface.
func ValidateForEdit(f SubmissionFields) apperr.ValidationErrors {
	return validateCommon(f)
}

func validateCommon(f SubmissionFields) apperr.ValidationErrors {
	errs := apperr.ValidationErrors{}

	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "Description is required"
	}
	if f.Department == "" {
		errs["department"] = "Department is required"
	} else if !f.Department.IsValid() {
		errs["department"] = "Please select a valid department"
	}
	if f.Priority == "" {
		errs["priority"] = "Priority is required"
	} else if !f.Priority.IsValid() {
		errs["priority"] = "Please select a valid priority"
	}
	if strings.TrimSpace(f.EstimatedImpact) == "" {
		errs["estimatedImpact"] = "Estimated impact is required"
	}
	if strings.TrimSpace(f.ContactInfo) == "" {
		errs["contactInfo"] = "Contact information is required"
	} else if !auth.ValidEmail(f.ContactInfo) {
		errs["contactInfo"] = "Please enter a valid email address"
	}

	return errs
}
