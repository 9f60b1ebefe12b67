package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"golang.org/x/sync/errgroup"
)

// ReportService builds the department report and the institution analytics
type ReportService interface {
	Reports(ctx context.Context, actor *Actor) (*dto.ReportsResponse, error)
	Analytics(ctx context.Context, actor *Actor) (*dto.AnalyticsResponse, error)
}

type reportServiceImpl struct {
	repos    *repositories.Repositories
	provider analytics.Provider
	logger   zerolog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(repos *repositories.Repositories, provider analytics.Provider, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		repos:    repos,
		provider: provider,
		logger:   logger,
	}
}

func (s *reportServiceImpl) Reports(ctx context.Context, actor *Actor) (*dto.ReportsResponse, error) {
	scope := actor.Scope()
	// Subjects have no owner, so a faculty scope reads the department instead.
	deptScope := query.Scope{Department: scope.Department}

	var (
		faculty  []models.FacultyMember
		subjects []models.Subject
		entries  []models.TimetableEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.repos.FacultyRepository.List(gctx)
		if err != nil {
			return err
		}
		faculty, err = query.Apply(gctx, all, query.InScope[models.FacultyMember](scope))
		return err
	})
	g.Go(func() error {
		all, err := s.repos.SubjectRepository.List(gctx)
		if err != nil {
			return err
		}
		subjects, err = query.Apply(gctx, all, query.InScope[models.Subject](deptScope))
		return err
	})
	g.Go(func() error {
		all, err := s.repos.TimetableRepository.List(gctx)
		if err != nil {
			return err
		}
		entries, err = query.Apply(gctx, all, query.InScope[models.TimetableEntry](scope))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading report data: %w", err)
	}

	resp := &dto.ReportsResponse{
		Department: actor.User.Department,
		Faculty:    make([]dto.FacultyReportRow, len(faculty)),
		Subjects:   make([]dto.SubjectReportRow, len(subjects)),
		Schedule:   ScheduleStatsOf(entries),
	}

	g, gctx = errgroup.WithContext(ctx)
	for i, f := range faculty {
		g.Go(func() error {
			hours, err := s.provider.WeeklyHours(gctx, f.Name)
			if err != nil {
				return err
			}
			utilization, err := s.provider.FacultyUtilization(gctx, f.Name)
			if err != nil {
				return err
			}
			resp.Faculty[i] = dto.FacultyReportRow{
				ID:           f.ID,
				Name:         f.Name,
				Subjects:     len(f.Subjects),
				WeeklyHours:  hours,
				Utilization:  utilization,
				Availability: f.Availability,
			}
			return nil
		})
	}
	g.Go(func() (err error) {
		resp.LeaveRate, err = s.provider.LeaveApprovalRate(gctx, scope.Department)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error computing report metrics: %w", err)
	}

	for i, sub := range subjects {
		resp.Subjects[i] = dto.SubjectReportRow{
			ID:       sub.ID,
			Name:     sub.Name,
			Credits:  sub.Credits,
			Semester: sub.Semester,
			Metrics:  analytics.SubjectPlaceholders(),
		}
		resp.Metrics.TotalCredits += sub.Credits
	}
	stats := FacultyStatsOf(faculty)
	resp.Metrics.TotalFaculty = stats.Total
	resp.Metrics.AvailableFaculty = stats.Available
	resp.Metrics.TotalSubjects = len(subjects)

	return resp, nil
}

// ScheduleStatsOf finds the busiest slot and the least busy day of a
// timetable slice. Ties go to the earlier slot or day.
func ScheduleStatsOf(entries []models.TimetableEntry) dto.ScheduleStats {
	stats := dto.ScheduleStats{
		TotalClasses:   len(entries),
		ClassesPerSlot: make(map[string]int, len(models.TimeSlots)),
	}
	perDay := make(map[string]int, len(models.Weekdays))
	for _, e := range entries {
		stats.ClassesPerSlot[e.TimeSlot]++
		perDay[e.Day]++
	}
	if len(entries) == 0 {
		return stats
	}

	busiest := -1
	for _, slot := range models.TimeSlots {
		if n := stats.ClassesPerSlot[slot]; n > busiest {
			busiest = n
			stats.BusiestSlot = slot
		}
	}
	least := -1
	for _, day := range models.Weekdays {
		if n := perDay[day]; least < 0 || n < least {
			least = n
			stats.LeastBusyDay = day
		}
	}
	return stats
}

func (s *reportServiceImpl) Analytics(ctx context.Context, actor *Actor) (*dto.AnalyticsResponse, error) {
	var (
		faculty  []models.FacultyMember
		subjects []models.Subject
		rooms    []models.Resource
		batches  []models.StudentBatch
		entries  []models.TimetableEntry
		metrics  []analytics.Metric
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { faculty, err = s.repos.FacultyRepository.List(gctx); return err })
	g.Go(func() (err error) { subjects, err = s.repos.SubjectRepository.List(gctx); return err })
	g.Go(func() (err error) { rooms, err = s.repos.ResourceRepository.List(gctx); return err })
	g.Go(func() (err error) { batches, err = s.repos.BatchRepository.List(gctx); return err })
	g.Go(func() (err error) { entries, err = s.repos.TimetableRepository.List(gctx); return err })
	g.Go(func() (err error) { metrics, err = s.provider.SystemMetrics(gctx); return err })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading analytics: %w", err)
	}

	resp := &dto.AnalyticsResponse{
		TotalFaculty:  len(faculty),
		TotalSubjects: len(subjects),
		TotalRooms:    len(rooms),
		Departments:   make([]dto.DepartmentBreakdown, len(models.Departments)),
		Metrics:       metrics,
	}
	for _, b := range batches {
		resp.TotalStudents += b.Strength
	}

	index := make(map[string]int, len(models.Departments))
	for i, dept := range models.Departments {
		index[dept] = i
		resp.Departments[i].Department = dept
	}
	for _, f := range faculty {
		if i, ok := index[f.Department]; ok {
			resp.Departments[i].Faculty++
			if f.Availability == models.AvailabilityAvailable {
				resp.Departments[i].AvailableFaculty++
			}
		}
	}
	for _, sub := range subjects {
		if i, ok := index[sub.Department]; ok {
			resp.Departments[i].Subjects++
		}
	}
	for _, b := range batches {
		if i, ok := index[b.Department]; ok {
			resp.Departments[i].Students += b.Strength
		}
	}
	for _, e := range entries {
		if i, ok := index[e.Department]; ok {
			resp.Departments[i].WeeklyClasses++
		}
	}

	s.logger.Debug().Int64("userID", actor.User.ID).Msg("Analytics computed")
	return resp, nil
}
