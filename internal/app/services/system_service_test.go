package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

func TestSystemService(t *testing.T) {
	f := newFixture(t)
	settings := SystemSettings{General: dto.GeneralSettings{InstitutionName: "Test University"}}
	svc := NewSystemService(settings, f.store, f.repos.SessionRepository, "memory", nopLogger)
	ctx := context.Background()

	require.NoError(t, f.repos.SessionRepository.Save(ctx, &models.SessionState{
		ID: "s1", ActiveView: models.ViewDashboard, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test University", cfg.General.InstitutionName)
	assert.True(t, cfg.Status.SessionStoreHealthy)
	assert.Equal(t, 1, cfg.Status.ActiveSessions)
	assert.Equal(t, 180, cfg.Status.StoreCounts["classrooms"])

	health := svc.Health(ctx)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "memory", health.SessionStore)
}

func TestSystemService_UpdateSection(t *testing.T) {
	f := newFixture(t)
	svc := NewSystemService(SystemSettings{}, f.store, f.repos.SessionRepository, "memory", nopLogger)
	admin := f.actor(t, "admin")

	tests := []struct {
		name    string
		section string
		payload interface{}
		wantErr error
	}{
		{name: "general", section: SectionGeneral, payload: &dto.GeneralSettings{InstitutionName: "X"}},
		{name: "valid teaching day", section: SectionTimetable, payload: &dto.TimetableSettings{StartTime: "09:00", EndTime: "17:00"}},
		{name: "day ends before start", section: SectionTimetable, payload: &dto.TimetableSettings{StartTime: "17:00", EndTime: "09:00"}, wantErr: apperrors.ErrValidationFailed},
		{name: "equal bounds", section: SectionTimetable, payload: &dto.TimetableSettings{StartTime: "09:00", EndTime: "09:00"}, wantErr: apperrors.ErrValidationFailed},
		{name: "unknown section", section: "billing", wantErr: apperrors.ErrResourceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack, err := svc.UpdateSection(context.Background(), admin, tt.section, tt.payload)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, ack.Accepted)
			assert.Equal(t, tt.payload, ack.Payload)
		})
	}
}
