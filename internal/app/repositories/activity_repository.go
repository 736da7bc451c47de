package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
)

// ActivityRepository handles database operations for the activity log
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// GetRecent retrieves an instructor's most recent entries, newest first
func (r *ActivityRepository) GetRecent(ctx context.Context, instructorID int64, limit int) ([]*models.ActivityEntry, error) {
	query := `
		SELECT id, instructor_id, action, COALESCE(details, ''), timestamp
		FROM activity_log
		WHERE instructor_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, instructorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ActivityEntry
	for rows.Next() {
		var entry models.ActivityEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.InstructorID,
			&entry.Action,
			&entry.Details,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// AppendTx inserts an entry within the given transaction
func (r *ActivityRepository) AppendTx(ctx context.Context, tx pgx.Tx, entry *models.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (instructor_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp
	`

	err := tx.QueryRow(ctx, query, entry.InstructorID, entry.Action, entry.Details).
		Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		return fmt.Errorf("error appending activity log: %w", err)
	}

	return nil
}
