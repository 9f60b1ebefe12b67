package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

func seededRepos(t *testing.T) *Repositories {
	t.Helper()
	tables, err := seed.Build(context.Background(), seed.Options{RandomSeed: 7, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	database := db.NewMemoryDB()
	database.Load(tables)
	return NewRepositories(database, NewMemorySessionRepository(time.Minute))
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repos := seededRepos(t)

	tests := []struct {
		name     string
		username string
		wantErr  error
		wantRole models.Role
	}{
		{name: "faculty", username: "john.doe", wantRole: models.RoleFaculty},
		{name: "hod", username: "alice.johnson", wantRole: models.RoleHOD},
		{name: "admin", username: "admin", wantRole: models.RoleAdministrator},
		{name: "case sensitive", username: "John.Doe", wantErr: apperrors.ErrUserNotFound},
		{name: "unknown", username: "nobody", wantErr: apperrors.ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repos.UserRepository.GetByUsername(context.Background(), tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
		})
	}
}

func TestUserRepository_CancelledContext(t *testing.T) {
	repos := seededRepos(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repos.UserRepository.GetByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFacultyRepository_ListIsACopy(t *testing.T) {
	repos := seededRepos(t)
	ctx := context.Background()

	first, err := repos.FacultyRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 30)
	first[0].Subjects[0] = "mutated"
	first[0].Name = "mutated"

	again, err := repos.FacultyRepository.GetByID(ctx, first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. John Doe", again.Name)
	assert.Equal(t, "Programming", again.Subjects[0])
}

func TestFacultyRepository_GetByName(t *testing.T) {
	repos := seededRepos(t)

	member, err := repos.FacultyRepository.GetByName(context.Background(), "Prof. Daniel Kim")
	require.NoError(t, err)
	assert.Equal(t, int64(21), member.ID)

	_, err = repos.FacultyRepository.GetByName(context.Background(), "Dr. Nobody")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestResourceRepository_ListByKind(t *testing.T) {
	repos := seededRepos(t)
	ctx := context.Background()

	all, err := repos.ResourceRepository.List(ctx)
	require.NoError(t, err)
	rooms, err := repos.ResourceRepository.ListByKind(ctx, models.KindClassroom)
	require.NoError(t, err)
	labs, err := repos.ResourceRepository.ListByKind(ctx, models.KindLaboratory)
	require.NoError(t, err)

	assert.Len(t, all, len(rooms)+len(labs))
	assert.Equal(t, models.KindClassroom, all[0].Kind)
	assert.Equal(t, models.KindLaboratory, all[len(all)-1].Kind)

	_, err = repos.ResourceRepository.GetByID(ctx, models.KindLaboratory, 9999)
	assert.ErrorIs(t, err, apperrors.ErrResourceItemNotFound)
}

func TestLeaveRequestRepository_GetByID(t *testing.T) {
	repos := seededRepos(t)

	req, err := repos.LeaveRequestRepository.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveApproved, req.Status)

	req, err = repos.LeaveRequestRepository.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, models.LeavePending, req.Status)

	_, err = repos.LeaveRequestRepository.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrLeaveRequestNotFound)
}

func TestMemorySessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Minute)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	state := &models.SessionState{ID: "abc", ActiveView: models.ViewDashboard}
	require.NoError(t, repo.Save(ctx, state))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.ViewDashboard, got.ActiveView)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	now = now.Add(2 * time.Minute)
	_, err = repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemorySessionRepository_Validation(t *testing.T) {
	repo := NewMemorySessionRepository(0)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Save(ctx, nil), apperrors.ErrBadRequest)
	assert.ErrorIs(t, repo.Save(ctx, &models.SessionState{}), apperrors.ErrBadRequest)
	assert.NoError(t, repo.Delete(ctx, "missing"))
	assert.NoError(t, repo.Ping(ctx))
}

func TestRedisSessionRepository_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	repo := NewRedisSessionRepository(client, time.Minute, zerolog.Nop())
	ctx := context.Background()

	assert.Error(t, repo.Ping(ctx))

	_, err := repo.Get(ctx, "abc")
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrSessionNotFound))

	assert.ErrorIs(t, repo.Save(ctx, &models.SessionState{}), apperrors.ErrBadRequest)
}
