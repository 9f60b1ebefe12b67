package analytics

import "context"

var _ Provider = StaticProvider{}

// StaticProvider returns fixed values. Used as a deterministic double in tests.
type StaticProvider struct {
	Hours       map[string]int
	Utilization float64
	Rooms       float64
	Approval    float64
}

func (p StaticProvider) WeeklyHours(_ context.Context, facultyName string) (int, error) {
	return p.Hours[facultyName], nil
}

func (p StaticProvider) FacultyUtilization(_ context.Context, facultyName string) (Metric, error) {
	return Metric{
		Key:       "facultyUtilization",
		Label:     "Faculty Utilization",
		Value:     percent(p.Hours[facultyName], WeeklySlots()),
		Unit:      "%",
		Available: true,
	}, nil
}

func (p StaticProvider) ScheduleUtilization(context.Context, string) (Metric, error) {
	return Metric{Key: "scheduleUtilization", Label: "Schedule Utilization", Value: p.Utilization, Unit: "%", Available: true}, nil
}

func (p StaticProvider) RoomAvailability(context.Context) (Metric, error) {
	return Metric{Key: "roomAvailability", Label: "Room Availability", Value: p.Rooms, Unit: "%", Available: true}, nil
}

func (p StaticProvider) LeaveApprovalRate(context.Context, string) (Metric, error) {
	return Metric{Key: "leaveApprovalRate", Label: "Leave Approval Rate", Value: p.Approval, Unit: "%", Available: true}, nil
}

func (p StaticProvider) SystemMetrics(ctx context.Context) ([]Metric, error) {
	schedule, _ := p.ScheduleUtilization(ctx, "")
	rooms, _ := p.RoomAvailability(ctx)
	leave, _ := p.LeaveApprovalRate(ctx, "")
	return []Metric{schedule, rooms, leave}, nil
}
