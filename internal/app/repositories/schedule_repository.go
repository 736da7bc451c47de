package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
)

// ScheduleRepository handles database reads for schedules. Inserts happen
// through InstructorRepository.AddSchedule so they share the status write's
// transaction.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// GetByInstructor retrieves an instructor's schedules, newest start date first
func (r *ScheduleRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Schedule, error) {
	query := `
		SELECT id, instructor_id, schedule_type, start_date, end_date, COALESCE(reason, ''), created_at
		FROM schedules
		WHERE instructor_id = $1
		ORDER BY start_date DESC
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		var schedule models.Schedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.InstructorID,
			&schedule.ScheduleType,
			&schedule.StartDate,
			&schedule.EndDate,
			&schedule.Reason,
			&schedule.CreatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}
