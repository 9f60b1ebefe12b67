package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func build(t *testing.T, seed int64) db.Tables {
	t.Helper()
	tb, err := Build(context.Background(), Options{RandomSeed: seed, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	return tb
}

func TestBuild_Sizes(t *testing.T) {
	tb := build(t, 1)
	assert.Len(t, tb.Users, 7)
	assert.Len(t, tb.Faculty, 30)
	assert.Len(t, tb.Subjects, 100)
	assert.Len(t, tb.Classrooms, 180)
	assert.Len(t, tb.Laboratories, 150)
	assert.Len(t, tb.Batches, 10)
	assert.Len(t, tb.LeaveRequests, 7)
	assert.GreaterOrEqual(t, len(tb.Timetable), len(sampleTimetable))
}

func TestBuild_DeterministicForSeed(t *testing.T) {
	a := build(t, 42)
	b := build(t, 42)
	assert.Equal(t, a.Timetable, b.Timetable)
	assert.Equal(t, a.Classrooms, b.Classrooms)
	assert.Equal(t, a.Laboratories, b.Laboratories)
}

func TestBuild_PasswordsHashed(t *testing.T) {
	tb := build(t, 1)

	for _, u := range tb.Users {
		if u.Username != "admin" {
			continue
		}
		assert.NotEqual(t, "admin123", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")))
		return
	}
	t.Fatal("admin fixture missing")
}

func TestBuild_ResourceRanges(t *testing.T) {
	tb := build(t, 9)

	for _, r := range tb.Classrooms {
		assert.Equal(t, models.KindClassroom, r.Kind)
		assert.GreaterOrEqual(t, r.Capacity, 20)
		assert.Less(t, r.Capacity, 100)
	}
	for _, r := range tb.Laboratories {
		assert.Equal(t, models.KindLaboratory, r.Kind)
		assert.GreaterOrEqual(t, r.Capacity, 15)
		assert.Less(t, r.Capacity, 45)
	}
	assert.Equal(t, "Room 001", tb.Classrooms[0].Name)
	assert.Equal(t, "Building F", tb.Classrooms[179].Building)
	assert.Equal(t, "Building F", tb.Laboratories[149].Building)
}

func TestBuild_TimetableCellsValid(t *testing.T) {
	for _, e := range build(t, 3).Timetable {
		assert.True(t, models.IsWeekday(e.Day), e.Day)
		assert.True(t, models.IsTimeSlot(e.TimeSlot), e.TimeSlot)
		assert.NotEmpty(t, e.Department)
	}
}

func TestBuild_LeaveDepartmentsFromRoster(t *testing.T) {
	tb := build(t, 1)

	want := map[int64]string{1: "Physics", 2: "Sociology", 5: "Computer Science", 6: "Mathematics", 7: "Computer Science"}
	for _, l := range tb.LeaveRequests {
		if dept, ok := want[l.ID]; ok {
			assert.Equal(t, dept, l.Department, "leave %d", l.ID)
		}
	}
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, Options{BcryptCost: bcrypt.MinCost})
	assert.ErrorIs(t, err, context.Canceled)
}
