// Package requests implements the AI-request lifecycle: validation,
// submission, diff-based updates with an activity trail, and the one-way
// conversion of an approved request into a tracked project.
package requests

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

// Store is the slice of the persistence layer the lifecycle service needs.
// *db.Database satisfies it; tests use an in-memory fake.
type Store interface {
	GetRequestByID(ctx context.Context, id string) (*models.AIRequest, error)
	CreateRequest(ctx context.Context, req *models.AIRequest) error
	UpdateRequest(ctx context.Context, id string, upd Update, updatedAt time.Time) error
	AppendActivity(ctx context.Context, item *models.ActivityItem) error

	// ConvertRequest persists the project, the source-request update, and the
	// activity entry in one transaction.
	ConvertRequest(ctx context.Context, project *models.Project, requestID string, status models.ProjectStatus, adminNotes string, updatedAt time.Time, item *models.ActivityItem) error
}

// Update carries the fields of a partial request update. Nil means "leave
// unchanged"; a set pointer is persisted only if its value actually differs
// from the stored one.
type Update struct {
	Status          *models.ProjectStatus `json:"status,omitempty"`
	Progress        *int                  `json:"progress,omitempty"`
	AdminNotes      *string               `json:"adminNotes,omitempty"`
	Description     *string               `json:"description,omitempty"`
	Department      *models.Department    `json:"department,omitempty"`
	Priority        *models.Priority      `json:"priority,omitempty"`
	EstimatedImpact *string               `json:"estimatedImpact,omitempty"`
	ContactInfo     *string               `json:"contactInfo,omitempty"`
}

func (u Update) empty() bool {
	return u.Status == nil && u.Progress == nil && u.AdminNotes == nil &&
		u.Description == nil && u.Department == nil && u.Priority == nil &&
		u.EstimatedImpact == nil && u.ContactInfo == nil
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SubmissionFields is the user-supplied portion of a new request.
type SubmissionFields struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Department      models.Department `json:"department"`
	Priority        models.Priority   `json:"priority"`
	EstimatedImpact string            `json:"estimatedImpact"`
	ContactInfo     string            `json:"contactInfo"`
}

// Submit validates the fields and creates the request. Validation failures
// come back as field-keyed data with no record persisted. The new request
// starts in Planning with zero progress and a snapshot of the submitter.
func (s *Service) Submit(ctx context.Context, fields SubmissionFields, submitter *models.User) (*models.AIRequest, apperr.ValidationErrors, error) {
	if verrs := ValidateForSubmission(fields); !verrs.Valid() {
		return nil, verrs, nil
	}

	req := &models.AIRequest{
		Title:           fields.Title,
		Description:     fields.Description,
		Department:      fields.Department,
		Priority:        fields.Priority,
		EstimatedImpact: fields.EstimatedImpact,
		ContactInfo:     fields.ContactInfo,
		Status:          models.StatusPlanning,
		Progress:        0,
		UserID:          submitter.ID,
		UserEmail:       submitter.Email,
		UserName:        submitter.Name,
		SubmittedAt:     s.now(),
	}

	if err := s.store.CreateRequest(ctx, req); err != nil {
		return nil, nil, err
	}

	item := &models.ActivityItem{
		Type:        models.ActivityRequestSubmitted,
		Title:       req.Title,
		Description: "New AI request submitted",
		Timestamp:   req.SubmittedAt,
		User:        submitter.Name,
		UserID:      submitter.ID,
		RequestID:   req.ID,
	}
	if err := s.store.AppendActivity(ctx, item); err != nil {
		// The request itself went through; a lost feed entry is not worth
		// failing the submission over.
		log.Printf("warn: failed to log activity for request %s: %v", req.ID, err)
	}

	return req, nil, nil
}

// Get returns one request by id.
func (s *Service) Get(ctx context.Context, id string) (*models.AIRequest, error) {
	return s.store.GetRequestByID(ctx, id)
}

// Update applies a partial update. Only fields whose new value differs from
// the stored one are written; an empty diff performs no write at all and
// returns the record unchanged. A non-empty diff sets lastUpdated and appends
// exactly one activity entry summarizing every changed field.
func (s *Service) Update(ctx context.Context, id string, upd Update) (*models.AIRequest, error) {
	cur, err := s.store.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateUpdate(cur, upd); err != nil {
		return nil, err
	}

	diff, changes := diffRequest(cur, upd)
	if len(changes) == 0 {
		return cur, nil
	}

	now := s.now()
	if err := s.store.UpdateRequest(ctx, id, diff, now); err != nil {
		return nil, err
	}

	updated := applyUpdate(*cur, diff)
	updated.LastUpdated = &now

	activityType := models.ActivityRequestUpdated
	if len(changes) == 1 && diff.Status != nil {
		activityType = models.ActivityStatusChanged
	}
	item := &models.ActivityItem{
		Type:        activityType,
		Title:       cur.Title,
		Description: strings.Join(changes, "; "),
		Timestamp:   now,
		User:        cur.UserName,
		UserID:      cur.UserID,
		RequestID:   cur.ID,
	}
	if err := s.store.AppendActivity(ctx, item); err != nil {
		log.Printf("warn: failed to log activity for request %s: %v", cur.ID, err)
	}

	return &updated, nil
}

func validateUpdate(cur *models.AIRequest, upd Update) error {
	if upd.Status != nil {
		if !upd.Status.IsValid() {
			return fmt.Errorf("invalid status %q", *upd.Status)
		}
		if !CanTransition(cur.Status, *upd.Status) {
			return fmt.Errorf("transition from %q to %q not allowed", cur.Status, *upd.Status)
		}
	}
	if upd.Priority != nil && !upd.Priority.IsValid() {
		return fmt.Errorf("invalid priority %q", *upd.Priority)
	}
	if upd.Department != nil && !upd.Department.IsValid() {
		return fmt.Errorf("invalid department %q", *upd.Department)
	}
	if upd.Progress != nil && (*upd.Progress < 0 || *upd.Progress > 100) {
		return fmt.Errorf("progress %d out of range", *upd.Progress)
	}
	return nil
}

// diffRequest narrows upd to the fields that actually differ from the stored
// record and builds one human-readable sentence per changed field.
func diffRequest(cur *models.AIRequest, upd Update) (Update, []string) {
	var diff Update
	var changes []string

	if upd.Status != nil && *upd.Status != cur.Status {
		diff.Status = upd.Status
		changes = append(changes, fmt.Sprintf("Status changed from %q to %q", cur.Status, *upd.Status))
	}
	if upd.Progress != nil && *upd.Progress != cur.Progress {
		diff.Progress = upd.Progress
		changes = append(changes, fmt.Sprintf("Progress updated from %d%% to %d%%", cur.Progress, *upd.Progress))
	}
	if upd.AdminNotes != nil && *upd.AdminNotes != cur.AdminNotes {
		diff.AdminNotes = upd.AdminNotes
		changes = append(changes, "Admin notes updated")
	}
	if upd.Description != nil && *upd.Description != cur.Description {
		diff.Description = upd.Description
		changes = append(changes, "Description updated")
	}
	if upd.Department != nil && *upd.Department != cur.Department {
		diff.Department = upd.Department
		changes = append(changes, fmt.Sprintf("Department changed from %q to %q", cur.Department, *upd.Department))
	}
	if upd.Priority != nil && *upd.Priority != cur.Priority {
		diff.Priority = upd.Priority
		changes = append(changes, fmt.Sprintf("Priority changed from %q to %q", cur.Priority, *upd.Priority))
	}
	if upd.EstimatedImpact != nil && *upd.EstimatedImpact != cur.EstimatedImpact {
		diff.EstimatedImpact = upd.EstimatedImpact
		changes = append(changes, "Estimated impact updated")
	}
	if upd.ContactInfo != nil && *upd.ContactInfo != cur.ContactInfo {
		diff.ContactInfo = upd.ContactInfo
		changes = append(changes, "Contact info updated")
	}

	return diff, changes
}

func applyUpdate(req models.AIRequest, diff Update) models.AIRequest {
	if diff.Status != nil {
		req.Status = *diff.Status
	}
	if diff.Progress != nil {
		req.Progress = *diff.Progress
	}
	if diff.AdminNotes != nil {
		req.AdminNotes = *diff.AdminNotes
	}
	if diff.Description != nil {
		req.Description = *diff.Description
	}
	if diff.Department != nil {
		req.Department = *diff.Department
	}
	if diff.Priority != nil {
		req.Priority = *diff.Priority
	}
	if diff.EstimatedImpact != nil {
		req.EstimatedImpact = *diff.EstimatedImpact
	}
	if diff.ContactInfo != nil {
		req.ContactInfo = *diff.ContactInfo
	}
	return req
}
