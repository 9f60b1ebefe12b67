package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/middleware"
)

// DirectoryController serves the faculty, subject and resource lists
type DirectoryController struct {
	facultyService  services.FacultyService
	subjectService  services.SubjectService
	resourceService services.ResourceService
	logger          zerolog.Logger
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(
	facultyService services.FacultyService,
	subjectService services.SubjectService,
	resourceService services.ResourceService,
	logger zerolog.Logger,
) *DirectoryController {
	return &DirectoryController{
		facultyService:  facultyService,
		subjectService:  subjectService,
		resourceService: resourceService,
		logger:          logger,
	}
}

// ListFaculty lists the faculty directory
// @Summary List faculty
// @Description Lists faculty members in the caller's scope, filtered by search term, department (administrator only) and availability
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name, department or a subject"
// @Param department query string false "Department (ignored for hod)"
// @Param availability query string false "Available, Busy, On Leave or all"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListResult[models.FacultyMember,dto.FacultyStats]}
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /faculty [get]
func (c *DirectoryController) ListFaculty(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var q dto.FacultyListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.facultyService.List(ctx.Request.Context(), actor, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result)
}

// ListSubjects lists the subject catalog
// @Summary List subjects
// @Description Lists subjects in the caller's scope with the faculty assigned to each
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name or department"
// @Param department query string false "Department (ignored for hod)"
// @Param semester query int false "Semester 1-8"
// @Success 200 {object} dto.APIResponse{data=dto.ListResult[dto.SubjectItem,dto.SubjectStats]}
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /subjects [get]
func (c *DirectoryController) ListSubjects(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var q dto.SubjectListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.subjectService.List(ctx.Request.Context(), actor, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result)
}

// ListResources lists classrooms and laboratories
// @Summary List resources
// @Description Lists classrooms and laboratories. Administrator only.
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name, building or type"
// @Param kind query string false "classroom, laboratory or all"
// @Param building query string false "Building"
// @Param status query string false "Available, Occupied, Maintenance or all"
// @Success 200 {object} dto.APIResponse{data=dto.ListResult[models.Resource,dto.ResourceStats]}
// @Failure 403 {object} dto.ErrorResponse "View not available for role"
// @Router /resources [get]
func (c *DirectoryController) ListResources(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var q dto.ResourceListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.resourceService.List(ctx.Request.Context(), actor, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result)
}

// GetResource retrieves one classroom or laboratory
// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param kind path string true "classroom or laboratory"
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=models.Resource}
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{kind}/{id} [get]
func (c *DirectoryController) GetResource(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resource, err := c.resourceService.Get(ctx.Request.Context(), actor, models.ResourceKind(ctx.Param("kind")), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, resource)
}

// parseIDParam reads a positive integer path parameter or answers 400
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID format")
		errorDetail = errorDetail.WithField(name).WithDetails("ID must be a positive integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
