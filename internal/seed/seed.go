package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/app/repositories"
	"github.com/jmcastillo/faculty-locator/internal/db"
	"github.com/jmcastillo/faculty-locator/internal/pkg/auth"
)

// demoPassword is shared by every seeded account
const demoPassword = "password"

type seedInstructor struct {
	username   string
	fullName   string
	department string // department code
	status     models.Status
}

var seedDepartments = []models.Department{
	{Name: "College of Computing Studies", Code: "CCS"},
	{Name: "College of Engineering", Code: "COE"},
	{Name: "College of Education", Code: "CED"},
	{Name: "College of Arts and Sciences", Code: "CAS"},
	{Name: "College of Business Administration", Code: "CBA"},
}

var seedInstructors = []seedInstructor{
	{"jdoe", "John Doe", "CCS", models.StatusIn},
	{"asmith", "Anna Smith", "CCS", models.StatusOut},
	{"bcruz", "Benjamin Cruz", "COE", models.StatusOnLeave},
	{"mgarcia", "Maria Garcia", "COE", models.StatusIn},
	{"rlopez", "Roberto Lopez", "CED", models.StatusOnTravel},
	{"lreyes", "Lorna Reyes", "CED", models.StatusIn},
	{"pnavarro", "Pedro Navarro", "CAS", models.StatusOut},
	{"ctan", "Carmen Tan", "CAS", models.StatusIn},
	{"jsantos", "Jose Santos", "CBA", models.StatusIn},
	{"mvillar", "Marta Villar", "CBA", models.StatusOnLeave},
}

// CreateDemoData inserts the demo departments and accounts when the store is
// empty. Skipped entirely if any user row exists; everything runs in one
// transaction so a partial seed can never satisfy that guard.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	instructorRepo := repositories.NewInstructorRepository(dbPool)
	activityRepo := repositories.NewActivityRepository(dbPool)

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("error hashing demo password: %w", err)
	}

	seeded := false
	err = db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		// Guard and inserts share the transaction so a partial seed can
		// never satisfy the guard on the next startup
		count, err := userRepo.CountTx(ctx, tx)
		if err != nil {
			return fmt.Errorf("error checking for existing users: %w", err)
		}
		if count > 0 {
			return nil
		}
		seeded = true

		lgr.Info().Msg("Seeding demo data...")

		departmentIDs := make(map[string]int64, len(seedDepartments))
		for i := range seedDepartments {
			department := seedDepartments[i]
			if err := departmentRepo.CreateTx(ctx, tx, &department); err != nil {
				return err
			}
			departmentIDs[department.Code] = department.ID
		}

		for _, entry := range seedInstructors {
			user := models.User{
				Username: entry.username,
				Password: hashed,
				FullName: entry.fullName,
				Role:     models.RoleInstructor,
			}
			if err := userRepo.CreateTx(ctx, tx, &user); err != nil {
				return err
			}

			instructor := models.Instructor{
				UserID:       user.ID,
				DepartmentID: departmentIDs[entry.department],
				Status:       entry.status,
			}
			if err := instructorRepo.CreateTx(ctx, tx, &instructor); err != nil {
				return err
			}

			activity := models.ActivityEntry{
				InstructorID: instructor.ID,
				Action:       models.ActionStatusSet,
				Details:      fmt.Sprintf("Status set to %s", entry.status),
			}
			if err := activityRepo.AppendTx(ctx, tx, &activity); err != nil {
				return err
			}
		}

		student := models.User{
			Username: "student",
			Password: hashed,
			FullName: "Juan Antonio",
			Role:     models.RoleStudent,
		}
		return userRepo.CreateTx(ctx, tx, &student)
	})
	if err != nil {
		return fmt.Errorf("error seeding demo data: %w", err)
	}

	if !seeded {
		lgr.Debug().Msg("Users already present, skipping demo data")
		return nil
	}

	lgr.Info().
		Int("departments", len(seedDepartments)).
		Int("instructors", len(seedInstructors)).
		Msg("Demo data seeded")
	return nil
}
