package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/auth"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
)

// SessionService manages the view state of signed-in clients
type SessionService interface {
	// Authenticate loads the session and resolves its actor
	Authenticate(ctx context.Context, sessionID string) (*Actor, error)
	Current(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	// Navigate switches to view, or to the dashboard when the role may not render it
	Navigate(ctx context.Context, sessionID string, view models.ViewID) (*dto.SessionResponse, error)
	// SetSidebar sets the sidebar state; nil toggles it
	SetSidebar(ctx context.Context, sessionID string, collapsed *bool) (*dto.SessionResponse, error)
}

type sessionServiceImpl struct {
	sessions repositories.SessionRepository
	events   EventPublisher
	now      func() time.Time
	logger   zerolog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions repositories.SessionRepository, events EventPublisher, logger zerolog.Logger) SessionService {
	if events == nil {
		events = noopPublisher{}
	}
	return &sessionServiceImpl{
		sessions: sessions,
		events:   events,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sessionServiceImpl) Authenticate(ctx context.Context, sessionID string) (*Actor, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewActor(state.ID, state.User)
}

func (s *sessionServiceImpl) Current(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	policy, err := auth.PolicyFor(state.User.Role)
	if err != nil {
		return nil, err
	}
	resp := newSessionResponse(state, policy)
	return &resp, nil
}

func (s *sessionServiceImpl) Navigate(ctx context.Context, sessionID string, view models.ViewID) (*dto.SessionResponse, error) {
	return s.update(ctx, sessionID, websocket.EventNavigated, func(state *models.SessionState, policy auth.Policy) {
		resolved := policy.Resolve(view)
		if resolved != view {
			s.logger.Debug().
				Str("sessionID", sessionID).
				Str("requested", string(view)).
				Str("resolved", string(resolved)).
				Msg("View not available for role, falling back")
		}
		state.ActiveView = resolved
	})
}

func (s *sessionServiceImpl) SetSidebar(ctx context.Context, sessionID string, collapsed *bool) (*dto.SessionResponse, error) {
	return s.update(ctx, sessionID, websocket.EventSidebar, func(state *models.SessionState, _ auth.Policy) {
		if collapsed == nil {
			state.SidebarCollapsed = !state.SidebarCollapsed
			return
		}
		state.SidebarCollapsed = *collapsed
	})
}

// update applies mutate to the stored state and saves it. Concurrent updates
// of one session are not serialized: the last save wins.
func (s *sessionServiceImpl) update(
	ctx context.Context,
	sessionID string,
	eventType string,
	mutate func(state *models.SessionState, policy auth.Policy),
) (*dto.SessionResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	policy, err := auth.PolicyFor(state.User.Role)
	if err != nil {
		return nil, err
	}

	mutate(state, policy)
	state.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}

	s.events.Publish(websocket.Event{
		Type:             eventType,
		SessionID:        state.ID,
		ActiveView:       string(state.ActiveView),
		SidebarCollapsed: state.SidebarCollapsed,
		Timestamp:        state.UpdatedAt,
	})

	resp := newSessionResponse(state, policy)
	return &resp, nil
}

func (s *sessionServiceImpl) load(ctx context.Context, sessionID string) (*models.SessionState, error) {
	if sessionID == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func newSessionResponse(state *models.SessionState, policy auth.Policy) dto.SessionResponse {
	return dto.SessionResponse{
		ID:               state.ID,
		User:             dto.NewUserResponse(state.User),
		ActiveView:       policy.Resolve(state.ActiveView),
		SidebarCollapsed: state.SidebarCollapsed,
		Navigation:       policy.Navigation(),
		CreatedAt:        state.CreatedAt,
		UpdatedAt:        state.UpdatedAt,
	}
}
