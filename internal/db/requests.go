package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
	"github.com/sjpathak2211/ai-dashboard/internal/requests"
)

const requestColumns = `id, title, description, department, priority, estimated_impact,
	contact_info, status, progress, admin_notes, user_id, user_email, user_name,
	submitted_at, updated_at`

func scanRequest(row pgxRow) (*models.AIRequest, error) {
	var req models.AIRequest
	err := row.Scan(&req.ID, &req.Title, &req.Description, &req.Department, &req.Priority,
		&req.EstimatedImpact, &req.ContactInfo, &req.Status, &req.Progress, &req.AdminNotes,
		&req.UserID, &req.UserEmail, &req.UserName, &req.SubmittedAt, &req.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

type pgxRow interface {
	Scan(dest ...any) error
}

func (db *Database) CreateRequest(ctx context.Context, req *models.AIRequest) error {
	req.ID = newID()
	req.SubmittedAt = touch(req.SubmittedAt)

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO ai_requests (id, title, description, department, priority,
			estimated_impact, contact_info, status, progress, admin_notes,
			user_id, user_email, user_name, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		req.ID, req.Title, req.Description, req.Department, req.Priority,
		req.EstimatedImpact, req.ContactInfo, req.Status, req.Progress, req.AdminNotes,
		req.UserID, req.UserEmail, req.UserName, req.SubmittedAt,
	)
	if err != nil {
		return storeErr("create request", err)
	}
	return nil
}

func (db *Database) GetRequestByID(ctx context.Context, id string) (*models.AIRequest, error) {
	row := db.Pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM ai_requests WHERE id = $1", requestColumns), id)

	req, err := scanRequest(row)
	if err != nil {
		return nil, storeErr("get request", err)
	}
	return req, nil
}

func (db *Database) GetAllRequests(ctx context.Context) ([]models.AIRequest, error) {
	rows, err := db.Pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM ai_requests ORDER BY submitted_at DESC", requestColumns))
	if err != nil {
		return nil, storeErr("list requests", err)
	}
	defer rows.Close()

	var out []models.AIRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, storeErr("scan request", err)
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (db *Database) GetRequestsByUser(ctx context.Context, userID string) ([]models.AIRequest, error) {
	rows, err := db.Pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM ai_requests WHERE user_id = $1 ORDER BY submitted_at DESC", requestColumns),
		userID)
	if err != nil {
		return nil, storeErr("list user requests", err)
	}
	defer rows.Close()

	var out []models.AIRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, storeErr("scan request", err)
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

// UpdateRequest writes only the fields present in upd. The lifecycle service
// has already narrowed upd to the values that actually changed.
func (db *Database) UpdateRequest(ctx context.Context, id string, upd requests.Update, updatedAt time.Time) error {
	sets, args := updateClauses(upd)
	if len(sets) == 0 {
		return nil
	}

	args = append(args, updatedAt)
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id)

	tag, err := db.Pool.Exec(ctx,
		fmt.Sprintf("UPDATE ai_requests SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)),
		args...,
	)
	if err != nil {
		return storeErr("update request", err)
	}
	if tag.RowsAffected() == 0 {
		return storeErr("update request", errNoRowsAffected)
	}
	return nil
}

var errNoRowsAffected = fmt.Errorf("no rows affected")

func updateClauses(upd requests.Update) ([]string, []any) {
	var sets []string
	var args []any

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Progress != nil {
		add("progress", *upd.Progress)
	}
	if upd.AdminNotes != nil {
		add("admin_notes", *upd.AdminNotes)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Department != nil {
		add("department", *upd.Department)
	}
	if upd.Priority != nil {
		add("priority", *upd.Priority)
	}
	if upd.EstimatedImpact != nil {
		add("estimated_impact", *upd.EstimatedImpact)
	}
	if upd.ContactInfo != nil {
		add("contact_info", *upd.ContactInfo)
	}

	return sets, args
}

// ConvertRequest commits the conversion as one transaction: insert the
// project, move the source request forward, append the activity entry.
func (db *Database) ConvertRequest(ctx context.Context, project *models.Project, requestID string, status models.ProjectStatus, adminNotes string, updatedAt time.Time, item *models.ActivityItem) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return storeErr("convert request", err)
	}
	defer tx.Rollback(ctx)

	project.ID = newID()
	tagsJSON, err := marshalTags(project.Tags)
	if err != nil {
		return storeErr("convert request", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO projects (id, title, description, status, progress, assigned_team,
			start_date, estimated_completion, priority, department, budget, tags, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		project.ID, project.Title, project.Description, project.Status, project.Progress,
		project.AssignedTeam, project.StartDate, project.EstimatedCompletion,
		project.Priority, project.Department, project.Budget, tagsJSON, updatedAt,
	)
	if err != nil {
		return storeErr("convert request: insert project", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE ai_requests SET status = $1, admin_notes = $2, updated_at = $3 WHERE id = $4`,
		status, adminNotes, updatedAt, requestID,
	)
	if err != nil {
		return storeErr("convert request: update request", err)
	}
	if tag.RowsAffected() == 0 {
		return storeErr("convert request: update request", errNoRowsAffected)
	}

	item.ID = newID()
	item.Timestamp = touch(item.Timestamp)
	_, err = tx.Exec(ctx,
		`INSERT INTO activity_log (id, type, title, description, user_id, request_id, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)`,
		item.ID, item.Type, item.Title, item.Description, item.UserID, item.RequestID, item.Timestamp,
	)
	if err != nil {
		return storeErr("convert request: log activity", err)
	}

	return tx.Commit(ctx)
}
