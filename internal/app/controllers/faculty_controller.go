package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
)

// FacultyController serves the faculty member's own views: availability,
// leave requests and profile
type FacultyController struct {
	availabilityService services.AvailabilityService
	leaveService        services.LeaveService
	profileService      services.ProfileService
	logger              zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(
	availabilityService services.AvailabilityService,
	leaveService services.LeaveService,
	profileService services.ProfileService,
	logger zerolog.Logger,
) *FacultyController {
	return &FacultyController{
		availabilityService: availabilityService,
		leaveService:        leaveService,
		profileService:      profileService,
		logger:              logger,
	}
}

// GetAvailability returns the weekly availability grid
// @Summary Get availability
// @Description Weekly grid of free and teaching slots with the current status and preferences
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AvailabilityResponse}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /availability [get]
func (c *FacultyController) GetAvailability(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	resp, err := c.availabilityService.Get(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// UpdatePreferences validates scheduling preferences
// @Summary Save availability preferences
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AvailabilityPreferences true "Preferences"
// @Success 200 {object} dto.APIResponse{data=dto.Acknowledgement[dto.AvailabilityPreferences]}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /availability/preferences [put]
func (c *FacultyController) UpdatePreferences(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req dto.AvailabilityPreferences
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	ack, err := c.availabilityService.UpdatePreferences(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, ack)
}

// UpdateStatus changes the availability status
// @Summary Set availability status
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} dto.APIResponse{data=dto.Acknowledgement[dto.UpdateStatusRequest]}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /availability/status [put]
func (c *FacultyController) UpdateStatus(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	ack, err := c.availabilityService.UpdateStatus(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, ack)
}

// ListLeaveRequests lists the caller's own leave requests
// @Summary List my leave requests
// @Tags leave
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches faculty name or reason"
// @Param status query string false "Pending, Approved, Rejected or all"
// @Success 200 {object} dto.APIResponse{data=dto.ListResult[dto.LeaveItem,dto.LeaveStats]}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /leave-requests [get]
func (c *FacultyController) ListLeaveRequests(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var q dto.LeaveListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.leaveService.ListOwn(ctx.Request.Context(), actor, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result)
}

// SubmitLeaveRequest validates a new leave application
// @Summary Submit a leave request
// @Description Validates the application and returns it as a pending preview. Nothing is stored.
// @Tags leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitLeaveRequest true "Leave application"
// @Success 201 {object} dto.APIResponse{data=dto.Acknowledgement[dto.LeaveItem]}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /leave-requests [post]
func (c *FacultyController) SubmitLeaveRequest(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req dto.SubmitLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Invalid leave request payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	ack, err := c.leaveService.Submit(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      ack,
		Timestamp: time.Now(),
	})
}

// GetProfile returns the caller's profile
// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /profile [get]
func (c *FacultyController) GetProfile(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	resp, err := c.profileService.Get(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// UpdateProfile validates profile changes
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} dto.APIResponse{data=dto.Acknowledgement[dto.UpdateProfileRequest]}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /profile [put]
func (c *FacultyController) UpdateProfile(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	ack, err := c.profileService.Update(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, ack)
}
