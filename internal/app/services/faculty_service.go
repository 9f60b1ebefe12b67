package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
)

// FacultyService defines the interface for the faculty directory
type FacultyService interface {
	List(ctx context.Context, actor *Actor, q dto.FacultyListQuery) (*dto.ListResult[models.FacultyMember, dto.FacultyStats], error)
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository, logger zerolog.Logger) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// List returns the faculty visible to the actor that match the query
func (s *facultyServiceImpl) List(ctx context.Context, actor *Actor, q dto.FacultyListQuery) (*dto.ListResult[models.FacultyMember, dto.FacultyStats], error) {
	all, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	department := departmentFilter(actor, q.Department)
	items, err := query.Apply(ctx, all,
		query.InScope[models.FacultyMember](actor.Scope()),
		func(f models.FacultyMember) bool { return query.Matches(department, f.Department) },
		func(f models.FacultyMember) bool { return query.Matches(q.Availability, string(f.Availability)) },
		func(f models.FacultyMember) bool {
			return query.Contains(q.Search, append([]string{f.Name, f.Department}, f.Subjects...)...)
		},
	)
	if err != nil {
		return nil, err
	}

	filters := dto.FilterOptions{
		DepartmentSelector: actor.Policy.DepartmentSelector(),
		Statuses:           stringsOf(models.Availabilities),
	}
	if filters.DepartmentSelector {
		filters.Departments = models.Departments
	}

	filtered := q.Search != "" || department != "" || q.Availability != ""
	result := newListResult(items, FacultyStatsOf(items), q.Page, filters, emptyMessage("faculty members", filtered))
	return &result, nil
}

// FacultyStatsOf counts a faculty slice by availability
func FacultyStatsOf(items []models.FacultyMember) dto.FacultyStats {
	stats := dto.FacultyStats{Total: len(items)}
	for _, f := range items {
		switch f.Availability {
		case models.AvailabilityAvailable:
			stats.Available++
		case models.AvailabilityBusy:
			stats.Busy++
		case models.AvailabilityOnLeave:
			stats.OnLeave++
		}
	}
	return stats
}
