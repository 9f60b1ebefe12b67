package analytics

import (
	"context"

	"github.com/yigit/schedulocity/internal/app/models"
)

// TimetableSource lists timetable entries
type TimetableSource interface {
	List(ctx context.Context) ([]models.TimetableEntry, error)
}

// ResourceSource lists classrooms and laboratories
type ResourceSource interface {
	List(ctx context.Context) ([]models.Resource, error)
}

// LeaveSource lists leave requests
type LeaveSource interface {
	List(ctx context.Context) ([]models.LeaveRequest, error)
}

var _ Provider = (*ComputedProvider)(nil)

// ComputedProvider derives every metric from the store on each call
type ComputedProvider struct {
	timetable TimetableSource
	resources ResourceSource
	leave     LeaveSource
}

// NewComputedProvider creates a provider over the given sources
func NewComputedProvider(timetable TimetableSource, resources ResourceSource, leave LeaveSource) *ComputedProvider {
	return &ComputedProvider{timetable: timetable, resources: resources, leave: leave}
}

func (p *ComputedProvider) WeeklyHours(ctx context.Context, facultyName string) (int, error) {
	entries, err := p.timetable.List(ctx)
	if err != nil {
		return 0, err
	}
	hours := 0
	for _, e := range entries {
		if e.Faculty == facultyName {
			hours++
		}
	}
	return hours, nil
}

func (p *ComputedProvider) FacultyUtilization(ctx context.Context, facultyName string) (Metric, error) {
	hours, err := p.WeeklyHours(ctx, facultyName)
	if err != nil {
		return Metric{}, err
	}
	return Metric{
		Key:       "facultyUtilization",
		Label:     "Faculty Utilization",
		Value:     percent(hours, WeeklySlots()),
		Unit:      "%",
		Available: true,
	}, nil
}

func (p *ComputedProvider) ScheduleUtilization(ctx context.Context, department string) (Metric, error) {
	entries, err := p.timetable.List(ctx)
	if err != nil {
		return Metric{}, err
	}
	type cell struct{ day, slot string }
	occupied := make(map[cell]struct{})
	for _, e := range entries {
		if department != "" && e.Department != department {
			continue
		}
		occupied[cell{e.Day, e.TimeSlot}] = struct{}{}
	}
	return Metric{
		Key:       "scheduleUtilization",
		Label:     "Schedule Utilization",
		Value:     percent(len(occupied), WeeklySlots()),
		Unit:      "%",
		Available: true,
	}, nil
}

func (p *ComputedProvider) RoomAvailability(ctx context.Context) (Metric, error) {
	resources, err := p.resources.List(ctx)
	if err != nil {
		return Metric{}, err
	}
	available := 0
	for _, r := range resources {
		if r.Status == models.StatusAvailable {
			available++
		}
	}
	return Metric{
		Key:       "roomAvailability",
		Label:     "Room Availability",
		Value:     percent(available, len(resources)),
		Unit:      "%",
		Available: len(resources) > 0,
	}, nil
}

func (p *ComputedProvider) LeaveApprovalRate(ctx context.Context, department string) (Metric, error) {
	requests, err := p.leave.List(ctx)
	if err != nil {
		return Metric{}, err
	}
	decided, approved := 0, 0
	for _, r := range requests {
		if department != "" && r.Department != department {
			continue
		}
		switch r.Status {
		case models.LeaveApproved:
			decided++
			approved++
		case models.LeaveRejected:
			decided++
		}
	}
	return Metric{
		Key:       "leaveApprovalRate",
		Label:     "Leave Approval Rate",
		Value:     percent(approved, decided),
		Unit:      "%",
		Available: decided > 0,
	}, nil
}

func (p *ComputedProvider) SystemMetrics(ctx context.Context) ([]Metric, error) {
	schedule, err := p.ScheduleUtilization(ctx, "")
	if err != nil {
		return nil, err
	}
	rooms, err := p.RoomAvailability(ctx)
	if err != nil {
		return nil, err
	}
	leave, err := p.LeaveApprovalRate(ctx, "")
	if err != nil {
		return nil, err
	}
	return []Metric{
		schedule,
		rooms,
		leave,
		Placeholder("studentSatisfaction", "Student Satisfaction"),
		Placeholder("facultySatisfaction", "Faculty Satisfaction"),
	}, nil
}
