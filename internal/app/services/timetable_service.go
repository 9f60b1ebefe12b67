package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
)

// TimetableService defines the interface for the timetable and personal schedule views
type TimetableService interface {
	List(ctx context.Context, actor *Actor, q dto.TimetableQuery) (*dto.TimetableResponse, error)
	// Conflicts reports cells where a faculty member or a classroom is booked twice
	Conflicts(ctx context.Context, actor *Actor) (*dto.ConflictReport, error)
}

type timetableServiceImpl struct {
	timetableRepo *repositories.TimetableRepository
	logger        zerolog.Logger
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(timetableRepo *repositories.TimetableRepository, logger zerolog.Logger) TimetableService {
	return &timetableServiceImpl{
		timetableRepo: timetableRepo,
		logger:        logger,
	}
}

func (s *timetableServiceImpl) scoped(ctx context.Context, actor *Actor) ([]models.TimetableEntry, error) {
	all, err := s.timetableRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timetable: %w", err)
	}
	return query.Apply(ctx, all, query.InScope[models.TimetableEntry](actor.Scope()))
}

func (s *timetableServiceImpl) List(ctx context.Context, actor *Actor, q dto.TimetableQuery) (*dto.TimetableResponse, error) {
	inScope, err := s.scoped(ctx, actor)
	if err != nil {
		return nil, err
	}

	department := departmentFilter(actor, q.Department)
	faculty := ""
	if actor.Policy.FacultySelector() {
		faculty = q.Faculty
	}

	items, err := query.Apply(ctx, inScope,
		func(e models.TimetableEntry) bool { return query.Matches(department, e.Department) },
		func(e models.TimetableEntry) bool { return query.Matches(faculty, e.Faculty) },
		func(e models.TimetableEntry) bool { return query.Matches(q.Day, e.Day) },
		func(e models.TimetableEntry) bool { return query.Contains(q.Search, e.Subject, e.Faculty, e.Classroom) },
	)
	if err != nil {
		return nil, err
	}

	filters := dto.FilterOptions{
		DepartmentSelector: actor.Policy.DepartmentSelector(),
		FacultySelector:    actor.Policy.FacultySelector(),
		Days:               models.Weekdays,
	}
	if filters.DepartmentSelector {
		filters.Departments = models.Departments
	}
	if filters.FacultySelector {
		filters.Faculty = facultyNamesOf(inScope)
	}

	filtered := q.Search != "" || department != "" || faculty != "" || (q.Day != "" && q.Day != query.AllFilter)
	return &dto.TimetableResponse{
		ListResult: newListResult(items, TimetableStatsOf(items), dto.Page{}, filters, emptyMessage("classes", filtered)),
		Days:       models.Weekdays,
		TimeSlots:  models.TimeSlots,
		Grid:       BuildWeekGrid(items),
	}, nil
}

// TimetableStatsOf counts a timetable slice per weekday
func TimetableStatsOf(items []models.TimetableEntry) dto.TimetableStats {
	stats := dto.TimetableStats{Total: len(items), ByDay: make(map[string]int, len(models.Weekdays))}
	for _, day := range models.Weekdays {
		stats.ByDay[day] = 0
	}
	for _, e := range items {
		stats.ByDay[e.Day]++
	}
	return stats
}

// BuildWeekGrid places entries in their day/slot cells. Every cell is present.
func BuildWeekGrid(items []models.TimetableEntry) dto.WeekGrid {
	grid := make(dto.WeekGrid, len(models.Weekdays))
	for _, day := range models.Weekdays {
		grid[day] = make(map[string][]models.TimetableEntry, len(models.TimeSlots))
		for _, slot := range models.TimeSlots {
			grid[day][slot] = []models.TimetableEntry{}
		}
	}
	for _, e := range items {
		if cells, ok := grid[e.Day]; ok {
			cells[e.TimeSlot] = append(cells[e.TimeSlot], e)
		}
	}
	return grid
}

func (s *timetableServiceImpl) Conflicts(ctx context.Context, actor *Actor) (*dto.ConflictReport, error) {
	entries, err := s.scoped(ctx, actor)
	if err != nil {
		return nil, err
	}

	report := FindConflicts(entries)
	if len(report.Conflicts) > 0 {
		s.logger.Info().
			Int("facultyConflicts", report.FacultyCount).
			Int("classroomConflicts", report.ClassroomCount).
			Msg("Timetable double-bookings detected")
	}
	return report, nil
}

// FindConflicts groups entries by day, slot and faculty or classroom and
// reports every group with more than one entry, in day and slot order.
func FindConflicts(entries []models.TimetableEntry) *dto.ConflictReport {
	type key struct {
		kind           dto.ConflictKind
		name, day, slot string
	}
	groups := make(map[key][]models.TimetableEntry)
	var order []key
	add := func(k key, e models.TimetableEntry) {
		if k.name == "" {
			return
		}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}
	for _, e := range entries {
		add(key{dto.ConflictFaculty, e.Faculty, e.Day, e.TimeSlot}, e)
		add(key{dto.ConflictClassroom, e.Classroom, e.Day, e.TimeSlot}, e)
	}

	report := &dto.ConflictReport{Conflicts: []dto.Conflict{}, EntriesExamined: len(entries)}
	for _, k := range order {
		booked := groups[k]
		if len(booked) < 2 {
			continue
		}
		report.Conflicts = append(report.Conflicts, dto.Conflict{
			Kind:     k.kind,
			Name:     k.name,
			Day:      k.day,
			TimeSlot: k.slot,
			Entries:  booked,
		})
		if k.kind == dto.ConflictFaculty {
			report.FacultyCount++
		} else {
			report.ClassroomCount++
		}
	}

	slices.SortStableFunc(report.Conflicts, func(a, b dto.Conflict) int {
		if d := models.WeekdayIndex(a.Day) - models.WeekdayIndex(b.Day); d != 0 {
			return d
		}
		return models.TimeSlotIndex(a.TimeSlot) - models.TimeSlotIndex(b.TimeSlot)
	})
	return report
}

func facultyNamesOf(entries []models.TimetableEntry) []string {
	var names []string
	for _, e := range entries {
		if e.Faculty != "" && !slices.Contains(names, e.Faculty) {
			names = append(names, e.Faculty)
		}
	}
	slices.Sort(names)
	return names
}
