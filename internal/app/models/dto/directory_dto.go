package dto

import (
	"github.com/jmcastillo/faculty-locator/internal/app/models"
)

// DepartmentDetailResponse is the browse-by-department view: the department
// and its instructors ordered by full name
type DepartmentDetailResponse struct {
	Department  *models.Department   `json:"department"`
	Instructors []*models.Instructor `json:"instructors"`
}
