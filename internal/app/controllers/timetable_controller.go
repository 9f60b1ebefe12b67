package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
)

// TimetableController serves the timetable, personal schedule and conflict report
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// List returns the scoped timetable and its weekly grid. It backs both the
// timetable view and a faculty member's schedule.
// @Summary List timetable entries
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches subject, faculty or classroom"
// @Param department query string false "Department (administrator only)"
// @Param faculty query string false "Faculty member (hod and administrator)"
// @Param day query string false "Weekday or all"
// @Success 200 {object} dto.APIResponse{data=dto.TimetableResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /timetable [get]
// @Router /schedule [get]
func (c *TimetableController) List(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var q dto.TimetableQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.timetableService.List(ctx.Request.Context(), actor, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Conflicts reports double-booked faculty and classrooms
// @Summary Timetable conflicts
// @Description Lists day and slot cells in which a faculty member or a classroom is booked more than once
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ConflictReport}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /timetable/conflicts [get]
func (c *TimetableController) Conflicts(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	report, err := c.timetableService.Conflicts(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, report)
}
