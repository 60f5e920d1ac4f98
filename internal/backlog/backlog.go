// Package backlog manages the single submission-capacity record every user
// sees before filing a request.
package backlog

import (
	"context"
	"fmt"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

type Store interface {
	GetBacklogStatus(ctx context.Context) (*models.BacklogInfo, error)
	UpdateBacklogStatus(ctx context.Context, info models.BacklogInfo, updatedBy string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the singleton row. A missing row is a setup error (the seed
// step creates it), surfaced as apperr.ErrNotFound by the store.
func (s *Service) Get(ctx context.Context) (*models.BacklogInfo, error) {
	return s.store.GetBacklogStatus(ctx)
}

// Update overwrites all three fields of the singleton. No history is kept.
func (s *Service) Update(ctx context.Context, info models.BacklogInfo, updatedBy string) error {
	if !info.Status.IsValid() {
		return fmt.Errorf("invalid backlog status %q", info.Status)
	}
	return s.store.UpdateBacklogStatus(ctx, info, updatedBy)
}
