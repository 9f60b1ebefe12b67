package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

func TestAvailabilityService_Get(t *testing.T) {
	f := newFixture(t)
	svc := NewAvailabilityService(f.repos.FacultyRepository, f.repos.TimetableRepository,
		analytics.StaticProvider{Hours: map[string]int{"Dr. John Doe": 4}}, nopLogger)
	john := f.actor(t, "john.doe")

	resp, err := svc.Get(context.Background(), john)
	require.NoError(t, err)
	assert.Equal(t, "Dr. John Doe", resp.FacultyName)
	assert.Equal(t, 4, resp.WeeklyHours)
	assert.Equal(t, dto.DefaultPreferences(), resp.Preferences)
	require.Len(t, resp.Grid, len(models.Weekdays))

	entries, err := f.repos.TimetableRepository.List(context.Background())
	require.NoError(t, err)
	busy := map[[2]string]bool{}
	for _, e := range entries {
		if e.Faculty == "Dr. John Doe" {
			busy[[2]string{e.Day, e.TimeSlot}] = true
			assert.False(t, resp.Grid[e.Day][e.TimeSlot], "%s %s should be taken", e.Day, e.TimeSlot)
		}
	}
	assert.Equal(t, len(models.Weekdays)*len(models.TimeSlots)-len(busy), resp.FreeSlots)
}

func TestAvailabilityService_UpdatePreferences(t *testing.T) {
	f := newFixture(t)
	svc := NewAvailabilityService(f.repos.FacultyRepository, f.repos.TimetableRepository, f.provider(), nopLogger)
	john := f.actor(t, "john.doe")

	tests := []struct {
		name     string
		prefs    dto.AvailabilityPreferences
		wantErr  error
		wantDays []string
	}{
		{
			name:     "days are deduplicated and ordered",
			prefs:    dto.AvailabilityPreferences{MaxHoursPerDay: 4, MaxHoursPerWeek: 20, PreferredDays: []string{"Friday", "Monday", "Friday", "Wednesday"}},
			wantDays: []string{"Monday", "Wednesday", "Friday"},
		},
		{
			name:    "daily above weekly",
			prefs:   dto.AvailabilityPreferences{MaxHoursPerDay: 8, MaxHoursPerWeek: 6},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "zero daily hours",
			prefs:   dto.AvailabilityPreferences{MaxHoursPerDay: 0, MaxHoursPerWeek: 100},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "daily hours above limit",
			prefs:   dto.AvailabilityPreferences{MaxHoursPerDay: 13, MaxHoursPerWeek: 40},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "weekly hours above limit",
			prefs:   dto.AvailabilityPreferences{MaxHoursPerDay: 6, MaxHoursPerWeek: 41},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:     "limits are inclusive",
			prefs:    dto.AvailabilityPreferences{MaxHoursPerDay: 12, MaxHoursPerWeek: 40},
			wantDays: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack, err := svc.UpdatePreferences(context.Background(), john, &tt.prefs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, ack.Accepted)
			assert.Equal(t, tt.wantDays, ack.Payload.PreferredDays)
		})
	}
}

func TestAvailabilityService_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	svc := NewAvailabilityService(f.repos.FacultyRepository, f.repos.TimetableRepository, f.provider(), nopLogger)
	john := f.actor(t, "john.doe")

	ack, err := svc.UpdateStatus(context.Background(), john, &dto.UpdateStatusRequest{Availability: models.AvailabilityBusy})
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityBusy, ack.Payload.Availability)

	_, err = svc.UpdateStatus(context.Background(), john, &dto.UpdateStatusRequest{Availability: "Sleeping"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	member, err := f.repos.FacultyRepository.GetByName(context.Background(), "Dr. John Doe")
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityAvailable, member.Availability)
}

func TestProfileService(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.repos.UserRepository, f.repos.FacultyRepository,
		analytics.StaticProvider{Hours: map[string]int{"Dr. John Doe": 6}}, nopLogger)
	ctx := context.Background()

	t.Run("faculty profile includes roster entry", func(t *testing.T) {
		resp, err := svc.Get(ctx, f.actor(t, "john.doe"))
		require.NoError(t, err)
		assert.Equal(t, "john.doe", resp.User.Username)
		require.NotNil(t, resp.Faculty)
		assert.Equal(t, int64(1), resp.Faculty.ID)
		assert.Equal(t, 6, resp.WeeklyHours)
	})

	t.Run("administrator has no roster entry", func(t *testing.T) {
		resp, err := svc.Get(ctx, f.actor(t, "admin"))
		require.NoError(t, err)
		assert.Nil(t, resp.Faculty)
	})

	tests := []struct {
		name    string
		req     dto.UpdateProfileRequest
		wantErr bool
	}{
		{name: "trimmed and accepted", req: dto.UpdateProfileRequest{Name: "  Dr. John Doe ", Email: "john.doe@university.edu", Phone: "+1-555-0101"}},
		{name: "phone optional", req: dto.UpdateProfileRequest{Name: "Dr. John Doe", Email: "john.doe@university.edu"}},
		{name: "name too short", req: dto.UpdateProfileRequest{Name: " J ", Email: "john.doe@university.edu"}, wantErr: true},
		{name: "letters in phone", req: dto.UpdateProfileRequest{Name: "Dr. John Doe", Email: "john.doe@university.edu", Phone: "call me"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack, err := svc.Update(ctx, f.actor(t, "john.doe"), &tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Dr. John Doe", ack.Payload.Name)
		})
	}
}
