package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/pkg/auth"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
)

// AuthService signs users in and out
type AuthService interface {
	// Login verifies the credentials and opens a session. A non-empty
	// sessionID is reused; the last login onto it wins.
	Login(ctx context.Context, req *dto.LoginRequest, sessionID string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

// UserLookup finds users by username
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthOptions tunes the login check
type AuthOptions struct {
	// LoginDelay is waited before every login answer
	LoginDelay time.Duration
	BcryptCost int
}

type authServiceImpl struct {
	users      UserLookup
	sessions   repositories.SessionRepository
	jwtService *auth.JWTService
	events     EventPublisher
	opts       AuthOptions
	dummyHash  func() string
	now        func() time.Time
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users UserLookup,
	sessions repositories.SessionRepository,
	jwtService *auth.JWTService,
	events EventPublisher,
	opts AuthOptions,
	logger zerolog.Logger,
) AuthService {
	if events == nil {
		events = noopPublisher{}
	}
	s := &authServiceImpl{
		users:      users,
		sessions:   sessions,
		jwtService: jwtService,
		events:     events,
		opts:       opts,
		now:        time.Now,
		logger:     logger,
	}
	// Unknown usernames are checked against this hash so both failure paths cost one bcrypt compare.
	s.dummyHash = sync.OnceValue(func() string {
		hash, err := auth.HashPassword(uuid.NewString(), opts.BcryptCost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to create dummy password hash")
			return ""
		}
		return hash
	})
	return s
}

// Login authenticates a user and stores a fresh session state
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest, sessionID string) (*dto.AuthResponse, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	hash := s.dummyHash()
	if user != nil {
		hash = user.PasswordHash
	}
	if !auth.CheckPassword(hash, req.Password) || user == nil {
		s.logger.Info().Str("username", req.Username).Msg("Login failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	actor, err := NewActor(sessionID, *user)
	if err != nil {
		return nil, err
	}
	if actor.SessionID == "" {
		actor.SessionID = uuid.NewString()
	}

	now := s.now()
	state := &models.SessionState{
		ID:               actor.SessionID,
		User:             *user,
		ActiveView:       models.ViewDashboard,
		SidebarCollapsed: false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user, state.ID)
	if err != nil {
		return nil, err
	}

	s.events.Publish(websocket.Event{
		Type:       websocket.EventLogin,
		SessionID:  state.ID,
		ActiveView: string(state.ActiveView),
		Timestamp:  now,
	})
	s.logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.Role)).
		Str("sessionID", state.ID).
		Msg("User logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Session: newSessionResponse(state, actor.Policy),
	}, nil
}

// Logout removes the session state
func (s *authServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	s.events.Publish(websocket.Event{
		Type:      websocket.EventLogout,
		SessionID: sessionID,
		Timestamp: s.now(),
	})
	s.logger.Info().Str("sessionID", sessionID).Msg("User logged out")
	return nil
}

// wait holds the answer for the configured login delay
func (s *authServiceImpl) wait(ctx context.Context) error {
	if s.opts.LoginDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.opts.LoginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
