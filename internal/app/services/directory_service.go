package services

import (
	"context"
	"fmt"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
)

// DepartmentStore is the department lookup surface the directory depends on
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// DepartmentInstructorStore lists the instructors of a department
type DepartmentInstructorStore interface {
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Instructor, error)
}

// DirectoryService serves the student browse path
type DirectoryService interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	DepartmentInstructors(ctx context.Context, departmentID int64) (*models.Department, []*models.Instructor, error)
}

// directoryServiceImpl implements the DirectoryService interface
type directoryServiceImpl struct {
	departments DepartmentStore
	instructors DepartmentInstructorStore
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(departments DepartmentStore, instructors DepartmentInstructorStore) DirectoryService {
	return &directoryServiceImpl{
		departments: departments,
		instructors: instructors,
	}
}

// ListDepartments returns all departments ordered by name
func (s *directoryServiceImpl) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	return departments, nil
}

// DepartmentInstructors returns the department and its instructors ordered by
// full name. An unknown id surfaces as apperrors.ErrDepartmentNotFound.
func (s *directoryServiceImpl) DepartmentInstructors(ctx context.Context, departmentID int64) (*models.Department, []*models.Instructor, error) {
	department, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return nil, nil, err
	}

	instructors, err := s.instructors.GetByDepartment(ctx, departmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing department instructors: %w", err)
	}

	return department, instructors, nil
}
