package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/pkg/validation"
)

// ProfileService serves the signed-in user's profile
type ProfileService interface {
	Get(ctx context.Context, actor *Actor) (*dto.ProfileResponse, error)
	Update(ctx context.Context, actor *Actor, req *dto.UpdateProfileRequest) (*dto.Acknowledgement[dto.UpdateProfileRequest], error)
}

type profileServiceImpl struct {
	userRepo    *repositories.UserRepository
	facultyRepo *repositories.FacultyRepository
	provider    analytics.Provider
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	userRepo *repositories.UserRepository,
	facultyRepo *repositories.FacultyRepository,
	provider analytics.Provider,
	logger zerolog.Logger,
) ProfileService {
	return &profileServiceImpl{
		userRepo:    userRepo,
		facultyRepo: facultyRepo,
		provider:    provider,
		logger:      logger,
	}
}

func (s *profileServiceImpl) Get(ctx context.Context, actor *Actor) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, actor.User.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{User: dto.NewUserResponse(*user)}

	member, err := s.facultyRepo.GetByName(ctx, user.Name)
	switch {
	case err == nil:
		resp.Faculty = member
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	if resp.WeeklyHours, err = s.provider.WeeklyHours(ctx, user.Name); err != nil {
		return nil, err
	}
	return resp, nil
}

// Update validates and echoes profile changes; the user record is not modified
func (s *profileServiceImpl) Update(ctx context.Context, actor *Actor, req *dto.UpdateProfileRequest) (*dto.Acknowledgement[dto.UpdateProfileRequest], error) {
	accepted := dto.UpdateProfileRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}

	if !validation.NewStringValidation(accepted.Name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return nil, apperrors.NewValidationError("Invalid name", map[string]interface{}{
			"name": fmt.Sprintf("name must be %d to %d characters", validation.NameMinLength, validation.NameMaxLength),
		})
	}
	if !validation.NewStringValidation(accepted.Phone).
		WithRequired(false).
		WithPattern(validation.CompiledPatterns.Phone).
		Validate() {
		return nil, apperrors.NewValidationError("Invalid phone number", map[string]interface{}{
			"phone": "phone may contain digits, spaces, dashes and parentheses",
		})
	}

	s.logger.Info().
		Int64("userID", actor.User.ID).
		Str("name", accepted.Name).
		Str("email", accepted.Email).
		Msg("Profile update received")

	return &dto.Acknowledgement[dto.UpdateProfileRequest]{
		Accepted: true,
		Message:  "Profile updated",
		Payload:  accepted,
	}, nil
}
