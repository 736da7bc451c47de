package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/app/models/dto"
	"github.com/jmcastillo/faculty-locator/internal/app/services"
	"github.com/jmcastillo/faculty-locator/internal/middleware"
	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
)

// InstructorController handles the instructor self-service path
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// Dashboard renders the instructor's own profile, schedules, and recent activity
func (c *InstructorController) Dashboard(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserID)

	dashboard, err := c.instructorService.Dashboard(ctx, userID)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewViewResponse(dashboard, flash.Pop(ctx)))
}

// UpdateStatus applies a status change from the dashboard form
func (c *InstructorController) UpdateStatus(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserID)

	var req dto.StatusUpdateRequest
	_ = ctx.ShouldBind(&req)

	newStatus, err := c.instructorService.UpdateStatus(ctx, userID, req.Status)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	flash.Success(ctx, fmt.Sprintf("Status updated to %s.", newStatus))
	ctx.Redirect(http.StatusSeeOther, "/instructor")
}

// AddSchedule creates a leave or travel schedule from the dashboard form
func (c *InstructorController) AddSchedule(ctx *gin.Context) {
	userID := ctx.GetInt64(middleware.ContextUserID)

	var req dto.ScheduleRequest
	_ = ctx.ShouldBind(&req)

	scheduleType, err := c.instructorService.AddSchedule(ctx, userID, req)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	label := "Leave"
	if scheduleType == models.ScheduleTravel {
		label = "Travel"
	}
	flash.Success(ctx, fmt.Sprintf("%s scheduled successfully.", label))
	ctx.Redirect(http.StatusSeeOther, "/instructor")
}
