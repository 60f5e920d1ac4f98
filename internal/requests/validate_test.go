package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

func TestValidateForSubmission(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmissionFields)
		field   string
		message string
	}{
		{"blank title", func(f *SubmissionFields) { f.Title = "  " }, "title", "Title is required"},
		{"blank description", func(f *SubmissionFields) { f.Description = "" }, "description", "Description is required"},
		{"missing department", func(f *SubmissionFields) { f.Department = "" }, "department", "Department is required"},
		{"unknown department", func(f *SubmissionFields) { f.Department = "Marketing" }, "department", "Please select a valid department"},
		{"missing priority", func(f *SubmissionFields) { f.Priority = "" }, "priority", "Priority is required"},
		{"unknown priority", func(f *SubmissionFields) { f.Priority = "Urgent" }, "priority", "Please select a valid priority"},
		{"blank impact", func(f *SubmissionFields) { f.EstimatedImpact = "" }, "estimatedImpact", "Estimated impact is required"},
		{"blank contact", func(f *SubmissionFields) { f.ContactInfo = "" }, "contactInfo", "Contact information is required"},
		{"malformed contact", func(f *SubmissionFields) { f.ContactInfo = "not an email" }, "contactInfo", "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields()
			tt.mutate(&fields)

			verrs := ValidateForSubmission(fields)
			assert.Equal(t, tt.message, verrs[tt.field])
		})
	}
}

func TestValidateForSubmissionValid(t *testing.T) {
	assert.True(t, ValidateForSubmission(validFields()).Valid())
}

func TestValidateForEditIgnoresTitle(t *testing.T) {
	fields := validFields()
	fields.Title = ""

	assert.True(t, ValidateForEdit(fields).Valid())
	assert.Contains(t, ValidateForSubmission(fields), "title")
}

func TestValidateEmailShapes(t *testing.T) {
	good := []string{"a@b.com", "jane.doe@ascendcohealth.com", "x+y@sub.domain.org"}
	bad := []string{"not-an-email", "a b@c.com", "a@b", "@b.com", "a@"}

	for _, email := range good {
		fields := validFields()
		fields.ContactInfo = email
		assert.NotContains(t, ValidateForSubmission(fields), "contactInfo", email)
	}
	for _, email := range bad {
		fields := validFields()
		fields.ContactInfo = email
		assert.Contains(t, ValidateForSubmission(fields), "contactInfo", email)
	}
}

func TestDepartmentEnum(t *testing.T) {
	valid := []models.Department{
		models.DeptClinicalOps, models.DeptIT, models.DeptResearch,
		models.DeptQA, models.DeptAdmin, models.DeptFinance,
	}
	for _, d := range valid {
		assert.True(t, d.IsValid(), string(d))
	}
	assert.False(t, models.Department("Legal").IsValid())
}
