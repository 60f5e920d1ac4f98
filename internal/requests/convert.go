package requests

import (
	"context"
	"fmt"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

// completionOffsetMonths maps priority to the project's estimated runway,
// measured from conversion time.
var completionOffsetMonths = map[models.Priority]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 6,
	models.PriorityLow:    9,
}

// Convert creates a tracked project from an approved request and moves the
// request to In Progress, recording the conversion date in the admin notes.
// The project insert, request update, and activity entry commit in a single
// transaction. There is no back-reference from project to request and no
// guard against converting the same request twice.
func (s *Service) Convert(ctx context.Context, requestID string) (*models.Project, error) {
	req, err := s.store.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	months, ok := completionOffsetMonths[req.Priority]
	if !ok {
		return nil, fmt.Errorf("invalid priority %q", req.Priority)
	}

	project := &models.Project{
		Title:               req.Title,
		Description:         fmt.Sprintf("%s\n\n**Impact:** %s", req.Description, req.EstimatedImpact),
		Status:              models.StatusPlanning,
		Progress:            0,
		AssignedTeam:        fmt.Sprintf("%s Team", req.Department),
		StartDate:           now,
		EstimatedCompletion: now.AddDate(0, months, 0),
		Priority:            req.Priority,
		Department:          req.Department,
		Tags:                []string{"AI Initiative", "User Request"},
	}

	note := fmt.Sprintf("Converted to project on %s", now.Format("1/2/2006"))
	notes := req.AdminNotes
	if notes != "" {
		notes += "\n"
	}
	notes += note

	item := &models.ActivityItem{
		Type:        models.ActivityProjectConverted,
		Title:       req.Title,
		Description: "Request converted to tracked project",
		Timestamp:   now,
		User:        req.UserName,
		UserID:      req.UserID,
		RequestID:   req.ID,
	}

	if err := s.store.ConvertRequest(ctx, project, req.ID, models.StatusInProgress, notes, now, item); err != nil {
		return nil, err
	}

	return project, nil
}
