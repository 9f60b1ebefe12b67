package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
)

// DashboardController serves the role dashboards, reports and analytics
type DashboardController struct {
	dashboardService services.DashboardService
	reportService    services.ReportService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, reportService services.ReportService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		reportService:    reportService,
	}
}

// Dashboard returns the dashboard of the caller's role
// @Summary Get dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	resp, err := c.dashboardService.Get(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Reports returns the department reports of a head of department
// @Summary Get department reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ReportsResponse}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /reports [get]
func (c *DashboardController) Reports(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	resp, err := c.reportService.Reports(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Analytics returns institution-wide analytics
// @Summary Get analytics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsResponse}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /analytics [get]
func (c *DashboardController) Analytics(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	resp, err := c.reportService.Analytics(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}
