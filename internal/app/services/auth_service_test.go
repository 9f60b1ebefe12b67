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
	"github.com/yigit/schedulocity/internal/pkg/auth"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(f *fixture, delay time.Duration, events EventPublisher) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "schedulocity.test",
	})
	svc := NewAuthService(f.repos.UserRepository, f.repos.SessionRepository, jwtService, events,
		AuthOptions{LoginDelay: delay, BcryptCost: bcrypt.MinCost}, nopLogger)
	return svc, jwtService
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantRole models.Role
		wantNav  int
	}{
		{name: "faculty", username: "john.doe", password: "faculty123", wantRole: models.RoleFaculty, wantNav: 5},
		{name: "hod", username: "alice.johnson", password: "hod123", wantRole: models.RoleHOD, wantNav: 6},
		{name: "administrator", username: "admin", password: "admin123", wantRole: models.RoleAdministrator, wantNav: 8},
		{name: "wrong password", username: "admin", password: "wrong", wantErr: apperrors.ErrInvalidCredentials},
		{name: "unknown user", username: "nobody", password: "admin123", wantErr: apperrors.ErrInvalidCredentials},
		{name: "username is case sensitive", username: "Admin", password: "admin123", wantErr: apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			events := &recordingPublisher{}
			svc, jwtService := newTestAuthService(f, 0, events)

			resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: tt.username, Password: tt.password}, "")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "invalid username or password", err.Error())
				count, err := f.repos.SessionRepository.Count(context.Background())
				require.NoError(t, err)
				assert.Zero(t, count, "failed login must not create a session")
				assert.Empty(t, events.types())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, resp.Session.User.Role)
			assert.Equal(t, models.ViewDashboard, resp.Session.ActiveView)
			assert.False(t, resp.Session.SidebarCollapsed)
			assert.Len(t, resp.Session.Navigation, tt.wantNav)
			assert.Equal(t, "Bearer", resp.Token.TokenType)

			claims, err := jwtService.ValidateAndExtractClaims(resp.Token.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, resp.Session.ID, claims.SessionID)
			assert.Equal(t, resp.Session.User.ID, claims.UserID)

			state, err := f.repos.SessionRepository.Get(context.Background(), resp.Session.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.username, state.User.Username)
			assert.Equal(t, []string{websocket.EventLogin}, events.types())
		})
	}
}

func TestAuthService_LoginReusesSessionID(t *testing.T) {
	f := newFixture(t)
	svc, _ := newTestAuthService(f, 0, nil)

	first, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "john.doe", Password: "faculty123"}, "")
	require.NoError(t, err)

	// The last login onto a session wins.
	second, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "admin123"}, first.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Session.ID, second.Session.ID)

	state, err := f.repos.SessionRepository.Get(context.Background(), first.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrator, state.User.Role)
}

func TestAuthService_LoginDelay(t *testing.T) {
	f := newFixture(t)
	svc, _ := newTestAuthService(f, 50*time.Millisecond, nil)

	t.Run("waits before failing", func(t *testing.T) {
		start := time.Now()
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"}, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "admin123"}, "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)
	events := &recordingPublisher{}
	svc, _ := newTestAuthService(f, 0, events)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice.johnson", Password: "hod123"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Session.ID))

	_, err = f.repos.SessionRepository.Get(context.Background(), resp.Session.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	assert.Equal(t, []string{websocket.EventLogin, websocket.EventLogout}, events.types())
}
