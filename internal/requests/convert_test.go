package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

func TestConvertCompletionOffsets(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		priority models.Priority
		months   int
	}{
		{models.PriorityHigh, 3},
		{models.PriorityMedium, 6},
		{models.PriorityLow, 9},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store, now)

			fields := validFields()
			fields.Priority = tt.priority
			req, verrs, err := svc.Submit(context.Background(), fields, submitter)
			require.NoError(t, err)
			require.True(t, verrs.Valid())

			project, err := svc.Convert(context.Background(), req.ID)
			require.NoError(t, err)

			assert.Equal(t, now, project.StartDate)
			assert.Equal(t, now.AddDate(0, tt.months, 0), project.EstimatedCompletion)
		})
	}
}

func TestConvertProjectShape(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := newTestService(store, now)
	req := submitOne(t, svc)

	project, err := svc.Convert(context.Background(), req.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPlanning, project.Status)
	assert.Equal(t, 0, project.Progress)
	assert.Equal(t, req.Title, project.Title)
	assert.Equal(t, "Clinical Operations Team", project.AssignedTeam)
	assert.Equal(t, []string{"AI Initiative", "User Request"}, project.Tags)
	assert.Contains(t, project.Description, req.Description)
	assert.Contains(t, project.Description, "**Impact:** "+req.EstimatedImpact)
}

func TestConvertMovesRequestForward(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := newTestService(store, now)
	req := submitOne(t, svc)

	// Existing notes must survive; the conversion note is appended.
	notes := "Discussed with IT leadership"
	_, err := svc.Update(context.Background(), req.ID, Update{AdminNotes: &notes})
	require.NoError(t, err)

	_, err = svc.Convert(context.Background(), req.ID)
	require.NoError(t, err)

	stored := store.requests[req.ID]
	assert.Equal(t, models.StatusInProgress, stored.Status)
	assert.Contains(t, stored.AdminNotes, "Discussed with IT leadership")
	assert.Contains(t, stored.AdminNotes, "Converted to project on 3/15/2025")

	last := store.activities[len(store.activities)-1]
	assert.Equal(t, models.ActivityProjectConverted, last.Type)
	assert.Equal(t, req.ID, last.RequestID)
}

func TestConvertIsNotIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, time.Now())
	req := submitOne(t, svc)

	first, err := svc.Convert(context.Background(), req.ID)
	require.NoError(t, err)
	second, err := svc.Convert(context.Background(), req.ID)
	require.NoError(t, err)

	// Converting twice creates two independent projects; there is no guard.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.projects, 2)
}

func TestConvertUnknownRequest(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Convert(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// Full walk through the lifecycle: submit, triage, convert.
func TestLifecycleScenario(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := newTestService(store, now)

	req, verrs, err := svc.Submit(context.Background(), SubmissionFields{
		Title:           "X",
		Description:     "Y",
		Department:      models.DeptIT,
		Priority:        models.PriorityHigh,
		EstimatedImpact: "Z",
		ContactInfo:     "a@b.com",
	}, submitter)
	require.NoError(t, err)
	require.True(t, verrs.Valid())
	assert.Equal(t, models.StatusPlanning, req.Status)
	assert.Equal(t, 0, req.Progress)

	status := models.StatusInProgress
	updated, err := svc.Update(context.Background(), req.ID, Update{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)

	statusChanges := 0
	for _, a := range store.activities {
		if a.Type == models.ActivityStatusChanged {
			statusChanges++
		}
	}
	assert.Equal(t, 1, statusChanges)

	project, err := svc.Convert(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlanning, project.Status)
	assert.Equal(t, 0, project.Progress)
	assert.Equal(t, now.AddDate(0, 3, 0), project.EstimatedCompletion)
	assert.Equal(t, "IT Team", project.AssignedTeam)

	stored := store.requests[req.ID]
	assert.Equal(t, models.StatusInProgress, stored.Status)
	assert.Contains(t, stored.AdminNotes, "Converted to project on")
}
