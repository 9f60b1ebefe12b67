package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// Configuration sections accepted by UpdateSection
const (
	SectionGeneral       = "general"
	SectionTimetable     = "timetable"
	SectionNotifications = "notifications"
	SectionSecurity      = "security"
)

// SystemSettings are the display settings loaded from configuration
type SystemSettings struct {
	General       dto.GeneralSettings
	Timetable     dto.TimetableSettings
	Notifications dto.NotificationSettings
	Security      dto.SecuritySettings
}

// StoreCounter reports table sizes of the mock store
type StoreCounter interface {
	Counts() map[string]int
}

// SystemService serves the system configuration view
type SystemService interface {
	Get(ctx context.Context) (*dto.SystemConfigResponse, error)
	// Health is the liveness summary of the service
	Health(ctx context.Context) *dto.HealthResponse
	// UpdateSection validates and logs a settings section; configuration is
	// not changed at runtime
	UpdateSection(ctx context.Context, actor *Actor, section string, payload interface{}) (*dto.Acknowledgement[interface{}], error)
}

type systemServiceImpl struct {
	settings     SystemSettings
	store        StoreCounter
	sessions     repositories.SessionRepository
	sessionStore string
	startedAt    time.Time
	logger       zerolog.Logger
}

// NewSystemService creates a new system service instance
func NewSystemService(
	settings SystemSettings,
	store StoreCounter,
	sessions repositories.SessionRepository,
	sessionStore string,
	logger zerolog.Logger,
) SystemService {
	return &systemServiceImpl{
		settings:     settings,
		store:        store,
		sessions:     sessions,
		sessionStore: sessionStore,
		startedAt:    time.Now(),
		logger:       logger,
	}
}

func (s *systemServiceImpl) Get(ctx context.Context) (*dto.SystemConfigResponse, error) {
	status := dto.SystemStatus{
		StoreCounts:  s.store.Counts(),
		SessionStore: s.sessionStore,
		Uptime:       s.uptime(),
		StartedAt:    s.startedAt,
	}

	if err := s.sessions.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("sessionStore", s.sessionStore).Msg("Session store ping failed")
	} else {
		status.SessionStoreHealthy = true
		count, err := s.sessions.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("error counting sessions: %w", err)
		}
		status.ActiveSessions = count
	}

	return &dto.SystemConfigResponse{
		General:       s.settings.General,
		Timetable:     s.settings.Timetable,
		Notifications: s.settings.Notifications,
		Security:      s.settings.Security,
		Status:        status,
	}, nil
}

func (s *systemServiceImpl) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{
		Status:       "ok",
		SessionStore: s.sessionStore,
		Uptime:       s.uptime(),
	}
	if err := s.sessions.Ping(ctx); err != nil {
		resp.Status = "degraded"
	}
	return resp
}

func (s *systemServiceImpl) UpdateSection(ctx context.Context, actor *Actor, section string, payload interface{}) (*dto.Acknowledgement[interface{}], error) {
	switch section {
	case SectionGeneral, SectionNotifications, SectionSecurity:
	case SectionTimetable:
		t, ok := payload.(*dto.TimetableSettings)
		if ok && t.StartTime >= t.EndTime {
			return nil, apperrors.NewValidationError("Teaching day ends before it starts", map[string]interface{}{
				"endTime": "endTime must be after startTime",
			})
		}
	default:
		return nil, fmt.Errorf("%w: unknown configuration section %q", apperrors.ErrResourceNotFound, section)
	}

	s.logger.Info().
		Int64("userID", actor.User.ID).
		Str("section", section).
		Interface("settings", payload).
		Msg("System configuration submitted")

	return &dto.Acknowledgement[interface{}]{
		Accepted: true,
		Message:  fmt.Sprintf("%s settings saved", section),
		Payload:  payload,
	}, nil
}

func (s *systemServiceImpl) uptime() string {
	return time.Since(s.startedAt).Round(time.Second).String()
}
