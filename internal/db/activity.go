package db

import (
	"context"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

func (db *Database) AppendActivity(ctx context.Context, item *models.ActivityItem) error {
	item.ID = newID()
	item.Timestamp = touch(item.Timestamp)

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO activity_log (id, type, title, description, user_id, request_id, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)`,
		item.ID, item.Type, item.Title, item.Description, item.UserID, item.RequestID, item.Timestamp,
	)
	if err != nil {
		return storeErr("append activity", err)
	}
	return nil
}

func (db *Database) RecentActivities(ctx context.Context, limit int) ([]models.ActivityItem, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT a.id, a.type, a.title, a.description, a.created_at,
			COALESCE(u.name, 'System'), COALESCE(a.user_id, ''), COALESCE(a.request_id, '')
		 FROM activity_log a
		 LEFT JOIN users u ON a.user_id = u.id
		 ORDER BY a.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, storeErr("list activities", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// UserActivities returns the entries correlated to the user directly or
// through one of their requests.
func (db *Database) UserActivities(ctx context.Context, userID string, limit int) ([]models.ActivityItem, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT a.id, a.type, a.title, a.description, a.created_at,
			COALESCE(u.name, 'System'), COALESCE(a.user_id, ''), COALESCE(a.request_id, '')
		 FROM activity_log a
		 LEFT JOIN users u ON a.user_id = u.id
		 WHERE a.user_id = $1
		    OR a.request_id IN (SELECT id FROM ai_requests WHERE user_id = $1)
		 ORDER BY a.created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, storeErr("list user activities", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func scanActivities(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.ActivityItem, error) {
	var out []models.ActivityItem
	for rows.Next() {
		var a models.ActivityItem
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.Timestamp,
			&a.User, &a.UserID, &a.RequestID); err != nil {
			return nil, storeErr("scan activity", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
