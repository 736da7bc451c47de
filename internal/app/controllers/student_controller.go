package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmcastillo/faculty-locator/internal/app/models/dto"
	"github.com/jmcastillo/faculty-locator/internal/app/services"
	"github.com/jmcastillo/faculty-locator/internal/middleware"
	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
)

// StudentController handles the student browse path
type StudentController struct {
	directoryService services.DirectoryService
}

// NewStudentController creates a new StudentController
func NewStudentController(directoryService services.DirectoryService) *StudentController {
	return &StudentController{
		directoryService: directoryService,
	}
}

// Departments renders the department listing, sorted by name
func (c *StudentController) Departments(ctx *gin.Context) {
	departments, err := c.directoryService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewViewResponse(departments, flash.Pop(ctx)))
}

// DepartmentDetail renders one department's instructors, sorted by full name.
// An unknown or malformed id lands back on the department listing.
func (c *StudentController) DepartmentDetail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleError(ctx, apperrors.ErrDepartmentNotFound)
		return
	}

	department, instructors, err := c.directoryService.DepartmentInstructors(ctx, id)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewViewResponse(dto.DepartmentDetailResponse{
		Department:  department,
		Instructors: instructors,
	}, flash.Pop(ctx)))
}
