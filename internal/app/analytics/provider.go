// Package analytics derives dashboard metrics from the mock store.
package analytics

import (
	"context"
	"math"

	"github.com/yigit/schedulocity/internal/app/models"
)

// Metric is one displayed statistic. Metrics without a data source are
// reported with Available=false and a zero value.
type Metric struct {
	Key       string  `json:"key" example:"scheduleUtilization"`
	Label     string  `json:"label" example:"Schedule Utilization"`
	Value     float64 `json:"value" example:"71.4"`
	Unit      string  `json:"unit,omitempty" example:"%"`
	Available bool    `json:"available" example:"true"`
}

// Placeholder returns an unavailable metric
func Placeholder(key, label string) Metric {
	return Metric{Key: key, Label: label, Available: false}
}

// SubjectPlaceholders are the per-subject figures the store has no data for
func SubjectPlaceholders() []Metric {
	return []Metric{
		Placeholder("enrolledStudents", "Enrolled Students"),
		Placeholder("passRate", "Pass Rate"),
		Placeholder("satisfaction", "Satisfaction"),
	}
}

// Provider supplies the metrics shown on dashboards, reports and analytics
type Provider interface {
	// WeeklyHours is the number of timetable slots taught by a faculty member.
	WeeklyHours(ctx context.Context, facultyName string) (int, error)
	// FacultyUtilization is weekly hours as a share of all weekly slots.
	FacultyUtilization(ctx context.Context, facultyName string) (Metric, error)
	// ScheduleUtilization is occupied day/slot cells over all cells. An empty
	// department covers the whole timetable.
	ScheduleUtilization(ctx context.Context, department string) (Metric, error)
	RoomAvailability(ctx context.Context) (Metric, error)
	LeaveApprovalRate(ctx context.Context, department string) (Metric, error)
	// SystemMetrics is the analytics view's metric panel.
	SystemMetrics(ctx context.Context) ([]Metric, error)
}

// WeeklySlots is the number of day/slot cells in one week
func WeeklySlots() int {
	return len(models.Weekdays) * len(models.TimeSlots)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
