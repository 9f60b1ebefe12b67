package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
)

// LeaveApprovalController serves the head of department's approval queue
type LeaveApprovalController struct {
	leaveService services.LeaveService
	logger       zerolog.Logger
}

// NewLeaveApprovalController creates a new LeaveApprovalController
func NewLeaveApprovalController(leaveService services.LeaveService, logger zerolog.Logger) *LeaveApprovalController {
	return &LeaveApprovalController{leaveService: leaveService, logger: logger}
}

// List lists the department's leave requests, pending ones by default
// @Summary List leave requests awaiting approval
// @Tags leave
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches faculty name or reason"
// @Param status query string false "Pending (default), Approved, Rejected or all"
// @Success 200 {object} dto.APIResponse{data=dto.ListResult[dto.LeaveItem,dto.LeaveStats]}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /leave-approvals [get]
func (c *LeaveApprovalController) List(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var q dto.LeaveListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.leaveService.ListForApproval(ctx.Request.Context(), actor, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result)
}

// Approve approves a pending leave request
// @Summary Approve leave request
// @Tags leave
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave request ID"
// @Success 200 {object} dto.APIResponse{data=dto.LeaveDecisionResponse}
// @Failure 404 {object} dto.ErrorResponse "Leave request not found in department"
// @Failure 409 {object} dto.ErrorResponse "Leave request is no longer pending"
// @Router /leave-approvals/{id}/approve [post]
func (c *LeaveApprovalController) Approve(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.leaveService.Approve(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Reject rejects a pending leave request
// @Summary Reject leave request
// @Tags leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave request ID"
// @Param request body dto.RejectLeaveRequest true "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=dto.LeaveDecisionResponse}
// @Failure 400 {object} dto.ErrorResponse "Reason missing"
// @Failure 404 {object} dto.ErrorResponse "Leave request not found in department"
// @Failure 409 {object} dto.ErrorResponse "Leave request is no longer pending"
// @Router /leave-approvals/{id}/reject [post]
func (c *LeaveApprovalController) Reject(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.RejectLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.leaveService.Reject(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}
