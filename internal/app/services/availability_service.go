package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// AvailabilityService serves a faculty member's availability view
type AvailabilityService interface {
	Get(ctx context.Context, actor *Actor) (*dto.AvailabilityResponse, error)
	UpdatePreferences(ctx context.Context, actor *Actor, prefs *dto.AvailabilityPreferences) (*dto.Acknowledgement[dto.AvailabilityPreferences], error)
	UpdateStatus(ctx context.Context, actor *Actor, req *dto.UpdateStatusRequest) (*dto.Acknowledgement[dto.UpdateStatusRequest], error)
}

type availabilityServiceImpl struct {
	facultyRepo   *repositories.FacultyRepository
	timetableRepo *repositories.TimetableRepository
	provider      analytics.Provider
	logger        zerolog.Logger
}

// NewAvailabilityService creates a new availability service instance
func NewAvailabilityService(
	facultyRepo *repositories.FacultyRepository,
	timetableRepo *repositories.TimetableRepository,
	provider analytics.Provider,
	logger zerolog.Logger,
) AvailabilityService {
	return &availabilityServiceImpl{
		facultyRepo:   facultyRepo,
		timetableRepo: timetableRepo,
		provider:      provider,
		logger:        logger,
	}
}

// Get marks every cell the actor teaches in as unavailable
func (s *availabilityServiceImpl) Get(ctx context.Context, actor *Actor) (*dto.AvailabilityResponse, error) {
	status := models.AvailabilityAvailable
	member, err := s.facultyRepo.GetByName(ctx, actor.User.Name)
	switch {
	case err == nil:
		status = member.Availability
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	all, err := s.timetableRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timetable: %w", err)
	}
	own, err := query.Apply(ctx, all, query.InScope[models.TimetableEntry](query.Scope{Owner: actor.User.Name}))
	if err != nil {
		return nil, err
	}

	hours, err := s.provider.WeeklyHours(ctx, actor.User.Name)
	if err != nil {
		return nil, err
	}

	grid := make(map[string]map[string]bool, len(models.Weekdays))
	for _, day := range models.Weekdays {
		grid[day] = make(map[string]bool, len(models.TimeSlots))
		for _, slot := range models.TimeSlots {
			grid[day][slot] = true
		}
	}
	for _, e := range own {
		if cells, ok := grid[e.Day]; ok {
			if _, ok := cells[e.TimeSlot]; ok {
				cells[e.TimeSlot] = false
			}
		}
	}
	free := 0
	for _, cells := range grid {
		for _, open := range cells {
			if open {
				free++
			}
		}
	}

	return &dto.AvailabilityResponse{
		FacultyName: actor.User.Name,
		Status:      status,
		WeeklyHours: hours,
		FreeSlots:   free,
		Grid:        grid,
		Preferences: dto.DefaultPreferences(),
	}, nil
}

// UpdatePreferences logs and echoes validated preferences; nothing is stored
func (s *availabilityServiceImpl) UpdatePreferences(ctx context.Context, actor *Actor, prefs *dto.AvailabilityPreferences) (*dto.Acknowledgement[dto.AvailabilityPreferences], error) {
	if details := preferenceRangeErrors(prefs); len(details) > 0 {
		return nil, apperrors.NewValidationError("Teaching hours out of range", details)
	}
	if prefs.MaxHoursPerDay > prefs.MaxHoursPerWeek {
		return nil, apperrors.NewValidationError("Daily hours exceed weekly hours", map[string]interface{}{
			"maxHoursPerWeek": "maxHoursPerWeek must not be less than maxHoursPerDay",
		})
	}

	accepted := *prefs
	accepted.PreferredDays = orderedDays(prefs.PreferredDays)

	s.logger.Info().
		Int64("userID", actor.User.ID).
		Int("maxHoursPerDay", accepted.MaxHoursPerDay).
		Int("maxHoursPerWeek", accepted.MaxHoursPerWeek).
		Strs("preferredDays", accepted.PreferredDays).
		Str("lunchBreakTime", accepted.LunchBreakTime).
		Str("notificationPreference", accepted.NotificationPreference).
		Msg("Availability preferences saved")

	return &dto.Acknowledgement[dto.AvailabilityPreferences]{
		Accepted: true,
		Message:  "Availability preferences saved",
		Payload:  accepted,
	}, nil
}

// UpdateStatus logs and echoes a status change; the roster is not modified
func (s *availabilityServiceImpl) UpdateStatus(ctx context.Context, actor *Actor, req *dto.UpdateStatusRequest) (*dto.Acknowledgement[dto.UpdateStatusRequest], error) {
	if !slices.Contains(models.Availabilities, req.Availability) {
		return nil, apperrors.NewValidationError("Unknown availability status", map[string]interface{}{
			"availability": fmt.Sprintf("availability must be one of: %s, %s, %s",
				models.AvailabilityAvailable, models.AvailabilityBusy, models.AvailabilityOnLeave),
		})
	}

	s.logger.Info().
		Int64("userID", actor.User.ID).
		Str("availability", string(req.Availability)).
		Msg("Availability status updated")

	return &dto.Acknowledgement[dto.UpdateStatusRequest]{
		Accepted: true,
		Message:  fmt.Sprintf("Status set to %s", req.Availability),
		Payload:  *req,
	}, nil
}

// orderedDays removes duplicates and sorts days in calendar order
func orderedDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b string) int { return models.WeekdayIndex(a) - models.WeekdayIndex(b) })
	return out
}

// Teaching hour limits accepted for availability preferences
const (
	MaxHoursPerDayLimit  = 12
	MaxHoursPerWeekLimit = 40
)

func preferenceRangeErrors(prefs *dto.AvailabilityPreferences) map[string]interface{} {
	details := map[string]interface{}{}
	if prefs.MaxHoursPerDay < 1 || prefs.MaxHoursPerDay > MaxHoursPerDayLimit {
		details["maxHoursPerDay"] = fmt.Sprintf("maxHoursPerDay must be between 1 and %d", MaxHoursPerDayLimit)
	}
	if prefs.MaxHoursPerWeek < 1 || prefs.MaxHoursPerWeek > MaxHoursPerWeekLimit {
		details["maxHoursPerWeek"] = fmt.Sprintf("maxHoursPerWeek must be between 1 and %d", MaxHoursPerWeekLimit)
	}
	return details
}
