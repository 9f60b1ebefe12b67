package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"golang.org/x/sync/errgroup"
)

// todayClasses is how many of a faculty member's classes the dashboard lists
const todayClasses = 3

// DashboardService builds the landing view of each role
type DashboardService interface {
	Get(ctx context.Context, actor *Actor) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	repos    *repositories.Repositories
	provider analytics.Provider
	logger   zerolog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(repos *repositories.Repositories, provider analytics.Provider, logger zerolog.Logger) DashboardService {
	return &dashboardServiceImpl{
		repos:    repos,
		provider: provider,
		logger:   logger,
	}
}

func (s *dashboardServiceImpl) Get(ctx context.Context, actor *Actor) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{Role: actor.User.Role}
	var err error
	switch actor.User.Role {
	case models.RoleFaculty:
		resp.Faculty, err = s.faculty(ctx, actor)
	case models.RoleHOD:
		resp.HOD, err = s.hod(ctx, actor)
	case models.RoleAdministrator:
		resp.Administrator, err = s.administrator(ctx)
	default:
		err = fmt.Errorf("%w: %q", apperrors.ErrUnknownRole, actor.User.Role)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *dashboardServiceImpl) faculty(ctx context.Context, actor *Actor) (*dto.FacultyDashboard, error) {
	scope := actor.Scope()
	out := &dto.FacultyDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.repos.TimetableRepository.List(gctx)
		if err != nil {
			return err
		}
		own, err := query.Apply(gctx, entries, query.InScope[models.TimetableEntry](scope))
		if err != nil {
			return err
		}
		out.TotalClasses = len(own)
		out.TodayClasses = append([]models.TimetableEntry{}, own[:min(todayClasses, len(own))]...)
		return nil
	})
	g.Go(func() error {
		hours, err := s.provider.WeeklyHours(gctx, actor.User.Name)
		out.WeeklyHours = hours
		return err
	})
	g.Go(func() error {
		requests, err := s.repos.LeaveRequestRepository.List(gctx)
		if err != nil {
			return err
		}
		own, err := query.Apply(gctx, requests, query.InScope[models.LeaveRequest](scope))
		if err != nil {
			return err
		}
		items := make([]dto.LeaveItem, len(own))
		for i, l := range own {
			items[i] = dto.NewLeaveItem(l)
		}
		out.Leave = LeaveStatsOf(items)
		return nil
	})
	g.Go(func() error {
		member, err := s.repos.FacultyRepository.GetByName(gctx, actor.User.Name)
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		out.SubjectsTaught = len(member.Subjects)
		out.Availability = member.Availability
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building faculty dashboard: %w", err)
	}
	return out, nil
}

func (s *dashboardServiceImpl) hod(ctx context.Context, actor *Actor) (*dto.HODDashboard, error) {
	scope := actor.Scope()
	out := &dto.HODDashboard{Department: actor.User.Department}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		faculty, err := s.repos.FacultyRepository.List(gctx)
		if err != nil {
			return err
		}
		dept, err := query.Apply(gctx, faculty, query.InScope[models.FacultyMember](scope))
		if err != nil {
			return err
		}
		stats := FacultyStatsOf(dept)
		out.TotalFaculty = stats.Total
		out.AvailableFaculty = stats.Available
		out.FacultyUtilization = UtilizationPercent(stats.Available, stats.Total)
		return nil
	})
	g.Go(func() error {
		subjects, err := s.repos.SubjectRepository.List(gctx)
		if err != nil {
			return err
		}
		dept, err := query.Apply(gctx, subjects, query.InScope[models.Subject](scope))
		out.TotalSubjects = len(dept)
		return err
	})
	g.Go(func() error {
		requests, err := s.repos.LeaveRequestRepository.List(gctx)
		if err != nil {
			return err
		}
		pending, err := query.Apply(gctx, requests,
			query.InScope[models.LeaveRequest](scope),
			func(l models.LeaveRequest) bool { return l.Status == models.LeavePending },
		)
		out.PendingLeave = len(pending)
		return err
	})
	g.Go(func() error {
		entries, err := s.repos.TimetableRepository.List(gctx)
		if err != nil {
			return err
		}
		dept, err := query.Apply(gctx, entries, query.InScope[models.TimetableEntry](scope))
		out.WeeklyClasses = len(dept)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building department dashboard: %w", err)
	}
	return out, nil
}

func (s *dashboardServiceImpl) administrator(ctx context.Context) (*dto.AdministratorDashboard, error) {
	out := &dto.AdministratorDashboard{}
	var (
		faculty  []models.FacultyMember
		subjects []models.Subject
	)
	utilization := make([]analytics.Metric, len(models.Departments))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		faculty, err = s.repos.FacultyRepository.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		subjects, err = s.repos.SubjectRepository.List(gctx)
		return err
	})
	g.Go(func() error {
		classrooms, err := s.repos.ResourceRepository.ListByKind(gctx, models.KindClassroom)
		if err != nil {
			return err
		}
		labs, err := s.repos.ResourceRepository.ListByKind(gctx, models.KindLaboratory)
		if err != nil {
			return err
		}
		out.Classrooms = len(classrooms)
		out.Laboratories = len(labs)
		return nil
	})
	g.Go(func() error {
		batches, err := s.repos.BatchRepository.List(gctx)
		if err != nil {
			return err
		}
		out.Batches = len(batches)
		for _, b := range batches {
			out.Students += b.Strength
		}
		return nil
	})
	for i, dept := range models.Departments {
		g.Go(func() (err error) {
			utilization[i], err = s.provider.ScheduleUtilization(gctx, dept)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building administrator dashboard: %w", err)
	}

	stats := FacultyStatsOf(faculty)
	out.TotalFaculty = stats.Total
	out.AvailableFaculty = stats.Available
	out.TotalSubjects = len(subjects)

	out.Departments = make([]dto.DepartmentOverview, len(models.Departments))
	for i, dept := range models.Departments {
		out.Departments[i] = dto.DepartmentOverview{
			Department:          dept,
			Faculty:             countDepartment(faculty, dept),
			Subjects:            countDepartment(subjects, dept),
			ScheduleUtilization: utilization[i],
		}
	}
	return out, nil
}

// UtilizationPercent is part over whole as a rounded percentage, 0 for an empty whole
func UtilizationPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func countDepartment[T query.Scoped](rows []T, department string) int {
	n := 0
	for _, r := range rows {
		if r.ScopeDepartment() == department {
			n++
		}
	}
	return n
}
