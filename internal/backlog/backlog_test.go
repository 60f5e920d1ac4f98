package backlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

type fakeStore struct {
	info      *models.BacklogInfo
	updatedBy string
}

func (f *fakeStore) GetBacklogStatus(context.Context) (*models.BacklogInfo, error) {
	if f.info == nil {
		return nil, apperr.ErrNotFound
	}
	copied := *f.info
	return &copied, nil
}

func (f *fakeStore) UpdateBacklogStatus(_ context.Context, info models.BacklogInfo, updatedBy string) error {
	f.info = &info
	f.updatedBy = updatedBy
	return nil
}

func TestGetMissingSingleton(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	store := &fakeStore{info: &models.BacklogInfo{
		Status:            models.BacklogClear,
		Message:           "Accepting new requests",
		EstimatedWaitTime: "1-2 weeks",
	}}
	svc := NewService(store)

	err := svc.Update(context.Background(), models.BacklogInfo{
		Status:            models.BacklogSwamped,
		Message:           "Backlog is full through Q3",
		EstimatedWaitTime: "8+ weeks",
	}, "admin-1")
	require.NoError(t, err)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.BacklogSwamped, got.Status)
	assert.Equal(t, "Backlog is full through Q3", got.Message)
	assert.Equal(t, "8+ weeks", got.EstimatedWaitTime)
	assert.Equal(t, "admin-1", store.updatedBy)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	err := svc.Update(context.Background(), models.BacklogInfo{Status: "panicking"}, "admin-1")
	assert.Error(t, err)
	assert.Nil(t, store.info)
}
