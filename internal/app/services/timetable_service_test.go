package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
)

func TestTimetableService_List(t *testing.T) {
	f := newFixture(t)
	svc := NewTimetableService(f.repos.TimetableRepository, nopLogger)
	ctx := context.Background()

	t.Run("faculty sees only own classes", func(t *testing.T) {
		resp, err := svc.List(ctx, f.actor(t, "john.doe"), dto.TimetableQuery{})
		require.NoError(t, err)
		for _, e := range resp.Items {
			assert.Equal(t, "Dr. John Doe", e.Faculty)
		}
	})

	t.Run("hod sees department", func(t *testing.T) {
		resp, err := svc.List(ctx, f.actor(t, "alice.johnson"), dto.TimetableQuery{Department: "Physics"})
		require.NoError(t, err)
		for _, e := range resp.Items {
			assert.Equal(t, "Computer Science", e.Department)
		}
	})

	t.Run("day filter and grid agree with items", func(t *testing.T) {
		resp, err := svc.List(ctx, f.actor(t, "admin"), dto.TimetableQuery{Day: "Monday"})
		require.NoError(t, err)
		assert.Equal(t, TimetableStatsOf(resp.Items), resp.Stats)
		assert.Equal(t, resp.Stats.Total, resp.Stats.ByDay["Monday"])

		inGrid := 0
		for day, slots := range resp.Grid {
			for _, entries := range slots {
				if day != "Monday" {
					assert.Empty(t, entries)
				}
				inGrid += len(entries)
			}
		}
		assert.Equal(t, len(resp.Items), inGrid)
	})
}

func TestFindConflicts(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: 1, Day: "Tuesday", TimeSlot: "09:00-10:00", Faculty: "Dr. A", Classroom: "Room 101"},
		{ID: 2, Day: "Tuesday", TimeSlot: "09:00-10:00", Faculty: "Dr. A", Classroom: "Room 102"},
		{ID: 3, Day: "Monday", TimeSlot: "11:15-12:15", Faculty: "Dr. B", Classroom: "Room 200"},
		{ID: 4, Day: "Monday", TimeSlot: "11:15-12:15", Faculty: "Dr. C", Classroom: "Room 200"},
		{ID: 5, Day: "Monday", TimeSlot: "09:00-10:00", Faculty: "Dr. B", Classroom: "Room 300"},
	}

	report := FindConflicts(entries)
	require.Len(t, report.Conflicts, 2)
	assert.Equal(t, 1, report.FacultyCount)
	assert.Equal(t, 1, report.ClassroomCount)
	assert.Equal(t, 5, report.EntriesExamined)

	// Sorted by day, then slot.
	assert.Equal(t, dto.ConflictClassroom, report.Conflicts[0].Kind)
	assert.Equal(t, "Room 200", report.Conflicts[0].Name)
	assert.Equal(t, dto.ConflictFaculty, report.Conflicts[1].Kind)
	assert.Equal(t, "Dr. A", report.Conflicts[1].Name)
	assert.Len(t, report.Conflicts[1].Entries, 2)

	assert.Empty(t, FindConflicts(entries[4:]).Conflicts)
}

func TestBuildWeekGrid(t *testing.T) {
	grid := BuildWeekGrid([]models.TimetableEntry{
		{ID: 1, Day: "Friday", TimeSlot: "15:15-16:15"},
	})
	assert.Len(t, grid, len(models.Weekdays))
	assert.Len(t, grid["Friday"]["15:15-16:15"], 1)
	assert.Empty(t, grid["Monday"]["09:00-10:00"])
}
