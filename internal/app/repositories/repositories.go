package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	DepartmentRepository *DepartmentRepository
	InstructorRepository *InstructorRepository
	ScheduleRepository   *ScheduleRepository
	ActivityRepository   *ActivityRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
		ActivityRepository:   NewActivityRepository(db),
	}
}
