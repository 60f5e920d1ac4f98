package db

import (
	"context"

	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

// backlogRowID pins the singleton; exactly one row ever exists.
const backlogRowID = 1

func (db *Database) GetBacklogStatus(ctx context.Context) (*models.BacklogInfo, error) {
	var info models.BacklogInfo

	err := db.Pool.QueryRow(ctx,
		"SELECT status, message, estimated_wait_time FROM backlog_status WHERE id = $1",
		backlogRowID,
	).Scan(&info.Status, &info.Message, &info.EstimatedWaitTime)

	if err != nil {
		return nil, storeErr("get backlog status", err)
	}
	return &info, nil
}

func (db *Database) UpdateBacklogStatus(ctx context.Context, info models.BacklogInfo, updatedBy string) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE backlog_status
		 SET status = $1, message = $2, estimated_wait_time = $3, updated_by = NULLIF($4, ''), updated_at = now()
		 WHERE id = $5`,
		info.Status, info.Message, info.EstimatedWaitTime, updatedBy, backlogRowID,
	)
	if err != nil {
		return storeErr("update backlog status", err)
	}
	if tag.RowsAffected() == 0 {
		return storeErr("update backlog status", errNoRowsAffected)
	}
	return nil
}

// SeedBacklogStatus inserts the singleton row if it is missing. Run by the
// bootstrap command, not the server.
func (db *Database) SeedBacklogStatus(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO backlog_status (id, status, message, estimated_wait_time)
		 VALUES ($1, $2, 'Accepting new requests', '1-2 weeks')
		 ON CONFLICT (id) DO NOTHING`,
		backlogRowID, models.BacklogClear,
	)
	if err != nil {
		return storeErr("seed backlog status", err)
	}
	return nil
}
