package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/db"
	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
	}
}

// GetByUserID retrieves an instructor by the owning user's ID, with the user's
// full name and the department populated
func (r *InstructorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Instructor, error) {
	query := `
		SELECT i.id, i.user_id, i.department_id, i.status,
		       u.full_name, d.name, d.code
		FROM instructors i
		JOIN users u ON u.id = i.user_id
		JOIN departments d ON d.id = i.department_id
		WHERE i.user_id = $1
	`

	var instructor models.Instructor
	var user models.User
	var department models.Department
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&instructor.ID,
		&instructor.UserID,
		&instructor.DepartmentID,
		&instructor.Status,
		&user.FullName,
		&department.Name,
		&department.Code,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	user.ID = instructor.UserID
	department.ID = instructor.DepartmentID
	instructor.User = &user
	instructor.Department = &department

	return &instructor, nil
}

// GetByDepartment retrieves all instructors of a department ordered by the
// user's full name, with the user relation populated
func (r *InstructorRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Instructor, error) {
	query := `
		SELECT i.id, i.user_id, i.department_id, i.status, u.full_name
		FROM instructors i
		JOIN users u ON u.id = i.user_id
		WHERE i.department_id = $1
		ORDER BY u.full_name
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		var user models.User
		if err := rows.Scan(
			&instructor.ID,
			&instructor.UserID,
			&instructor.DepartmentID,
			&instructor.Status,
			&user.FullName,
		); err != nil {
			return nil, err
		}
		user.ID = instructor.UserID
		instructor.User = &user
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// ChangeStatus overwrites the instructor's status and appends the activity
// log entry in one transaction.
func (r *InstructorRepository) ChangeStatus(ctx context.Context, instructorID int64, newStatus models.Status, action, details string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE instructors SET status = $1 WHERE id = $2`,
			newStatus, instructorID)
		if err != nil {
			return fmt.Errorf("error updating status: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrProfileNotFound
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO activity_log (instructor_id, action, details) VALUES ($1, $2, $3)`,
			instructorID, action, details)
		if err != nil {
			return fmt.Errorf("error appending activity log: %w", err)
		}

		return nil
	})
}

// AddSchedule inserts the schedule, overwrites the instructor's status with
// newStatus, and appends the activity log entry, all in one transaction.
func (r *InstructorRepository) AddSchedule(ctx context.Context, schedule *models.Schedule, newStatus models.Status, action, details string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO schedules (instructor_id, schedule_type, start_date, end_date, reason)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, created_at`,
			schedule.InstructorID, schedule.ScheduleType, schedule.StartDate,
			schedule.EndDate, schedule.Reason).Scan(&schedule.ID, &schedule.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating schedule: %w", err)
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE instructors SET status = $1 WHERE id = $2`,
			newStatus, schedule.InstructorID)
		if err != nil {
			return fmt.Errorf("error updating status: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrProfileNotFound
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO activity_log (instructor_id, action, details) VALUES ($1, $2, $3)`,
			schedule.InstructorID, action, details)
		if err != nil {
			return fmt.Errorf("error appending activity log: %w", err)
		}

		return nil
	})
}

// CreateTx inserts an instructor row within the given transaction and fills in its ID
func (r *InstructorRepository) CreateTx(ctx context.Context, tx pgx.Tx, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (user_id, department_id, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		instructor.UserID, instructor.DepartmentID, instructor.Status).Scan(&instructor.ID)
	if err != nil {
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}
