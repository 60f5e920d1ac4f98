package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
	"github.com/sjpathak2211/ai-dashboard/internal/requests"
)

func strPtr(s string) *string { return &s }

func TestValidateOwnerEdit(t *testing.T) {
	t.Run("untouched fields are not validated", func(t *testing.T) {
		upd := requests.Update{Description: strPtr("new description")}
		assert.True(t, validateOwnerEdit("old", upd).Valid())
	})

	t.Run("blanking the description is rejected", func(t *testing.T) {
		upd := requests.Update{Description: strPtr("  ")}
		verrs := validateOwnerEdit("old", upd)
		assert.Equal(t, "Description is required", verrs["description"])
	})

	t.Run("provided fields are checked", func(t *testing.T) {
		dept := models.Department("Marketing")
		upd := requests.Update{
			Department:  &dept,
			ContactInfo: strPtr("not-an-email"),
		}
		verrs := validateOwnerEdit("keep", upd)
		assert.Contains(t, verrs, "department")
		assert.Equal(t, "Please enter a valid email address", verrs["contactInfo"])
	})
}

func TestActivityLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", defaultActivityLimit},
		{"limit=5", 5},
		{"limit=0", defaultActivityLimit},
		{"limit=-3", defaultActivityLimit},
		{"limit=500", defaultActivityLimit},
		{"limit=abc", defaultActivityLimit},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/api/activity?"+tt.query, nil)
		assert.Equal(t, tt.want, activityLimit(r), tt.query)
	}
}
