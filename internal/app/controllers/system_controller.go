package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// SystemController serves health, system configuration and data management
type SystemController struct {
	systemService services.SystemService
	dataService   services.DataService
	logger        zerolog.Logger
}

// NewSystemController creates a new SystemController
func NewSystemController(systemService services.SystemService, dataService services.DataService, logger zerolog.Logger) *SystemController {
	return &SystemController{
		systemService: systemService,
		dataService:   dataService,
		logger:        logger,
	}
}

// Health reports service liveness
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	respondOK(ctx, c.systemService.Health(ctx.Request.Context()))
}

// GetConfig returns the system configuration and live status
// @Summary Get system configuration
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SystemConfigResponse}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /system-config [get]
func (c *SystemController) GetConfig(ctx *gin.Context) {
	resp, err := c.systemService.Get(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// UpdateConfigSection validates one settings section
// @Summary Save a configuration section
// @Description Validates and logs a settings section. The running configuration is not changed.
// @Tags system
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "general, timetable, notifications or security"
// @Success 200 {object} dto.APIResponse{data=dto.Acknowledgement[any]}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Unknown section"
// @Router /system-config/{section} [put]
func (c *SystemController) UpdateConfigSection(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	section := ctx.Param("section")
	var payload interface{}
	switch section {
	case services.SectionGeneral:
		payload = &dto.GeneralSettings{}
	case services.SectionTimetable:
		payload = &dto.TimetableSettings{}
	case services.SectionNotifications:
		payload = &dto.NotificationSettings{}
	case services.SectionSecurity:
		payload = &dto.SecuritySettings{}
	default:
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: unknown configuration section %q", apperrors.ErrResourceNotFound, section))
		return
	}
	if err := ctx.ShouldBindJSON(payload); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	ack, err := c.systemService.UpdateSection(ctx.Request.Context(), actor, section, payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, ack)
}

// DataStats counts the rows of every table
// @Summary Data statistics
// @Tags data-management
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DataStatsResponse}
// @Router /data-management/stats [get]
func (c *SystemController) DataStats(ctx *gin.Context) {
	resp, err := c.dataService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resp)
}

// Export downloads one table as CSV, or one or all tables as XLSX
// @Summary Export data
// @Tags data-management
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param type query string true "all, faculty, subjects, resources, batches, timetable or leave-requests"
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid export request"
// @Router /data-management/export [get]
func (c *SystemController) Export(ctx *gin.Context) {
	var q dto.ExportQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	file, err := c.dataService.Export(ctx.Request.Context(), q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	ctx.Data(http.StatusOK, file.ContentType, file.Data)
}

// ListBackups lists stored backups
// @Summary List backups
// @Tags data-management
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.BackupResponse}
// @Router /data-management/backups [get]
func (c *SystemController) ListBackups(ctx *gin.Context) {
	backups, err := c.dataService.ListBackups(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, backups)
}

// CreateBackup writes a snapshot of the store
// @Summary Create backup
// @Tags data-management
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=dto.BackupResponse}
// @Router /data-management/backups [post]
func (c *SystemController) CreateBackup(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	backup, err := c.dataService.CreateBackup(ctx.Request.Context(), actor)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create backup")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      backup,
		Timestamp: time.Now(),
	})
}

// DownloadBackup streams one backup file
// @Summary Download backup
// @Tags data-management
// @Produce json
// @Security BearerAuth
// @Param name path string true "Backup file name"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Backup not found"
// @Router /data-management/backups/{name} [get]
func (c *SystemController) DownloadBackup(ctx *gin.Context) {
	name := ctx.Param("name")
	rc, err := c.dataService.OpenBackup(ctx.Request.Context(), name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer rc.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	ctx.Header("Content-Type", "application/json")
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, rc); err != nil && !errors.Is(err, ctx.Request.Context().Err()) {
		c.logger.Warn().Err(err).Str("backup", name).Msg("Backup download interrupted")
	}
}

// DeleteBackup removes one backup file
// @Summary Delete backup
// @Tags data-management
// @Produce json
// @Security BearerAuth
// @Param name path string true "Backup file name"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Backup not found"
// @Router /data-management/backups/{name} [delete]
func (c *SystemController) DeleteBackup(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	if err := c.dataService.DeleteBackup(ctx.Request.Context(), actor, ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Backup deleted"})
}

// RestoreBackup is refused while the store is read-only
// @Summary Restore backup
// @Tags data-management
// @Produce json
// @Security BearerAuth
// @Param name path string true "Backup file name"
// @Failure 404 {object} dto.ErrorResponse "Backup not found"
// @Failure 409 {object} dto.ErrorResponse "The data store is read-only"
// @Router /data-management/backups/{name}/restore [post]
func (c *SystemController) RestoreBackup(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	if err := c.dataService.RestoreBackup(ctx.Request.Context(), actor, ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Backup restored"})
}
