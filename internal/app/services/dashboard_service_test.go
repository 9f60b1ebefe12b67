package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

var testProvider = analytics.StaticProvider{
	Hours:       map[string]int{"Dr. John Doe": 5, "Prof. Daniel Kim": 3},
	Utilization: 40,
	Rooms:       75,
	Approval:    50,
}

func TestDashboardService_Get(t *testing.T) {
	f := newFixture(t)
	svc := NewDashboardService(f.repos, testProvider, nopLogger)
	ctx := context.Background()

	t.Run("faculty", func(t *testing.T) {
		resp, err := svc.Get(ctx, f.actor(t, "john.doe"))
		require.NoError(t, err)
		require.NotNil(t, resp.Faculty)
		assert.Nil(t, resp.HOD)
		assert.Nil(t, resp.Administrator)
		assert.Equal(t, 5, resp.Faculty.WeeklyHours)
		assert.Equal(t, dto.LeaveStats{Total: 3, Approved: 2, Rejected: 1}, resp.Faculty.Leave)
		assert.LessOrEqual(t, len(resp.Faculty.TodayClasses), 3)
		assert.Equal(t, models.AvailabilityAvailable, resp.Faculty.Availability)
	})

	t.Run("faculty without classes", func(t *testing.T) {
		actor := f.actor(t, "john.doe")
		actor.User.Name = "Dr. Visiting Lecturer"
		resp, err := svc.Get(ctx, actor)
		require.NoError(t, err)
		require.NotNil(t, resp.Faculty)
		assert.Zero(t, resp.Faculty.TotalClasses)
		require.NotNil(t, resp.Faculty.TodayClasses)
		assert.Empty(t, resp.Faculty.TodayClasses)

		raw, err := json.Marshal(resp.Faculty)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"todayClasses":[]`)
	})

	t.Run("head of department", func(t *testing.T) {
		resp, err := svc.Get(ctx, f.actor(t, "alice.johnson"))
		require.NoError(t, err)
		require.NotNil(t, resp.HOD)
		assert.Equal(t, "Computer Science", resp.HOD.Department)
		assert.Equal(t, 2, resp.HOD.TotalFaculty)
		assert.Equal(t, 1, resp.HOD.PendingLeave)
	})

	t.Run("administrator", func(t *testing.T) {
		resp, err := svc.Get(ctx, f.actor(t, "admin"))
		require.NoError(t, err)
		require.NotNil(t, resp.Administrator)
		assert.Equal(t, 180, resp.Administrator.Classrooms)
		assert.Equal(t, 150, resp.Administrator.Laboratories)
		assert.Len(t, resp.Administrator.Departments, len(models.Departments))
		assert.Equal(t, 40.0, resp.Administrator.Departments[0].ScheduleUtilization.Value)
	})

	t.Run("unknown role", func(t *testing.T) {
		actor := f.actor(t, "john.doe")
		actor.User.Role = "student"
		_, err := svc.Get(ctx, actor)
		assert.ErrorIs(t, err, apperrors.ErrUnknownRole)
	})
}

func TestUtilizationPercent(t *testing.T) {
	assert.Equal(t, 0, UtilizationPercent(3, 0))
	assert.Equal(t, 67, UtilizationPercent(2, 3))
	assert.Equal(t, 100, UtilizationPercent(2, 2))
}

func TestReportService(t *testing.T) {
	f := newFixture(t)
	svc := NewReportService(f.repos, testProvider, nopLogger)
	ctx := context.Background()

	t.Run("department report", func(t *testing.T) {
		resp, err := svc.Reports(ctx, f.actor(t, "alice.johnson"))
		require.NoError(t, err)
		require.Len(t, resp.Faculty, 2)
		assert.Equal(t, 2, resp.Metrics.TotalFaculty)
		assert.Equal(t, 50.0, resp.LeaveRate.Value)
		for _, row := range resp.Faculty {
			assert.Equal(t, testProvider.Hours[row.Name], row.WeeklyHours)
		}
		for _, sub := range resp.Subjects {
			for _, m := range sub.Metrics {
				assert.False(t, m.Available)
			}
		}
	})

	t.Run("analytics", func(t *testing.T) {
		resp, err := svc.Analytics(ctx, f.actor(t, "admin"))
		require.NoError(t, err)
		assert.Equal(t, 330, resp.TotalRooms)
		assert.Len(t, resp.Metrics, 3)

		faculty := 0
		for _, d := range resp.Departments {
			faculty += d.Faculty
		}
		assert.LessOrEqual(t, faculty, resp.TotalFaculty)
	})
}

func TestScheduleStatsOf(t *testing.T) {
	stats := ScheduleStatsOf([]models.TimetableEntry{
		{Day: "Monday", TimeSlot: "10:00-11:00"},
		{Day: "Tuesday", TimeSlot: "10:00-11:00"},
		{Day: "Tuesday", TimeSlot: "09:00-10:00"},
	})
	assert.Equal(t, 3, stats.TotalClasses)
	assert.Equal(t, "10:00-11:00", stats.BusiestSlot)
	assert.Equal(t, "Wednesday", stats.LeastBusyDay)
}
