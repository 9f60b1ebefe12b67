package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
)

// SubjectService defines the interface for the subject catalog
type SubjectService interface {
	List(ctx context.Context, actor *Actor, q dto.SubjectListQuery) (*dto.ListResult[dto.SubjectItem, dto.SubjectStats], error)
}

type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository, facultyRepo *repositories.FacultyRepository, logger zerolog.Logger) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// List returns the subjects visible to the actor with their assigned faculty
func (s *subjectServiceImpl) List(ctx context.Context, actor *Actor, q dto.SubjectListQuery) (*dto.ListResult[dto.SubjectItem, dto.SubjectStats], error) {
	subjects, err := s.subjectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	faculty, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	department := departmentFilter(actor, q.Department)
	semester := ""
	if q.Semester > 0 {
		semester = strconv.Itoa(q.Semester)
	}

	// Subjects carry no owner; a faculty scope only narrows rows that have one.
	scope := actor.Scope()
	scope.Owner = ""

	filtered, err := query.Apply(ctx, subjects,
		query.InScope[models.Subject](scope),
		func(sub models.Subject) bool { return query.Matches(department, sub.Department) },
		func(sub models.Subject) bool { return query.Matches(semester, strconv.Itoa(sub.Semester)) },
		func(sub models.Subject) bool { return query.Contains(q.Search, sub.Name, sub.Department) },
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubjectItem, len(filtered))
	for i, sub := range filtered {
		items[i] = dto.SubjectItem{Subject: sub, AssignedFaculty: AssignedFaculty(sub.Name, faculty)}
	}

	filters := dto.FilterOptions{
		DepartmentSelector: actor.Policy.DepartmentSelector(),
		Semesters:          []int{1, 2, 3, 4, 5, 6, 7, 8},
	}
	if filters.DepartmentSelector {
		filters.Departments = models.Departments
	}

	isFiltered := q.Search != "" || department != "" || semester != ""
	result := newListResult(items, SubjectStatsOf(items), q.Page, filters, emptyMessage("subjects", isFiltered))
	return &result, nil
}

// AssignedFaculty lists the roster members whose subject list names subject
func AssignedFaculty(subject string, faculty []models.FacultyMember) []string {
	names := []string{}
	for _, f := range faculty {
		if f.Teaches(subject) {
			names = append(names, f.Name)
		}
	}
	return names
}

// SubjectStatsOf summarizes a subject slice
func SubjectStatsOf(items []dto.SubjectItem) dto.SubjectStats {
	stats := dto.SubjectStats{Total: len(items)}
	for _, it := range items {
		stats.TotalCredits += it.Credits
		stats.AssignedFaculty += len(it.AssignedFaculty)
	}
	if stats.Total > 0 {
		stats.AverageCredits = math.Round(float64(stats.TotalCredits)/float64(stats.Total)*10) / 10
	}
	return stats
}
