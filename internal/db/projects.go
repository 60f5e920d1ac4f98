package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

func (db *Database) CreateProject(ctx context.Context, p *models.Project) error {
	p.ID = newID()
	tagsJSON, err := marshalTags(p.Tags)
	if err != nil {
		return storeErr("create project", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO projects (id, title, description, status, progress, assigned_team,
			start_date, estimated_completion, priority, department, budget, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Title, p.Description, p.Status, p.Progress, p.AssignedTeam,
		p.StartDate, p.EstimatedCompletion, p.Priority, p.Department, p.Budget, tagsJSON,
	)
	if err != nil {
		return storeErr("create project", err)
	}
	return nil
}

func (db *Database) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, title, description, status, progress, assigned_team, start_date,
			estimated_completion, priority, department, budget, tags
		 FROM projects ORDER BY updated_at DESC`)
	if err != nil {
		return nil, storeErr("list projects", err)
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		var p models.Project
		var tagsJSON []byte

		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Progress,
			&p.AssignedTeam, &p.StartDate, &p.EstimatedCompletion, &p.Priority,
			&p.Department, &p.Budget, &tagsJSON)
		if err != nil {
			return nil, storeErr("scan project", err)
		}
		unmarshalTags(tagsJSON, &p)
		out = append(out, p)
	}
	return out, rows.Err()
}

// ProjectUpdate carries the fields of a partial project update; nil leaves
// the column untouched.
type ProjectUpdate struct {
	Title               *string
	Description         *string
	Status              *models.ProjectStatus
	Progress            *int
	AssignedTeam        *string
	EstimatedCompletion *time.Time
	Priority            *models.Priority
	Department          *models.Department
	Budget              *int64
	Tags                []string
}

func (db *Database) UpdateProject(ctx context.Context, id string, upd ProjectUpdate) error {
	var sets []string
	var args []any

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Progress != nil {
		add("progress", *upd.Progress)
	}
	if upd.AssignedTeam != nil {
		add("assigned_team", *upd.AssignedTeam)
	}
	if upd.EstimatedCompletion != nil {
		add("estimated_completion", *upd.EstimatedCompletion)
	}
	if upd.Priority != nil {
		add("priority", *upd.Priority)
	}
	if upd.Department != nil {
		add("department", *upd.Department)
	}
	if upd.Budget != nil {
		add("budget", *upd.Budget)
	}
	if upd.Tags != nil {
		tagsJSON, err := marshalTags(upd.Tags)
		if err != nil {
			return storeErr("update project", err)
		}
		add("tags", tagsJSON)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())
	args = append(args, id)

	tag, err := db.Pool.Exec(ctx,
		fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)),
		args...,
	)
	if err != nil {
		return storeErr("update project", err)
	}
	if tag.RowsAffected() == 0 {
		return storeErr("update project", errNoRowsAffected)
	}
	return nil
}

func (db *Database) DeleteProject(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return storeErr("delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return storeErr("delete project", errNoRowsAffected)
	}
	return nil
}
