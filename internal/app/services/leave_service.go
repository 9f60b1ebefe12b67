package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/query"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/pkg/email"
)

// LeaveService defines the interface for the leave workflow
type LeaveService interface {
	// ListOwn returns the actor's own requests; status defaults to all
	ListOwn(ctx context.Context, actor *Actor, q dto.LeaveListQuery) (*dto.ListResult[dto.LeaveItem, dto.LeaveStats], error)
	// ListForApproval returns the requests the actor reviews; status defaults to Pending
	ListForApproval(ctx context.Context, actor *Actor, q dto.LeaveListQuery) (*dto.ListResult[dto.LeaveItem, dto.LeaveStats], error)
	Submit(ctx context.Context, actor *Actor, req *dto.SubmitLeaveRequest) (*dto.Acknowledgement[dto.LeaveItem], error)
	Approve(ctx context.Context, actor *Actor, id int64) (*dto.LeaveDecisionResponse, error)
	Reject(ctx context.Context, actor *Actor, id int64, req *dto.RejectLeaveRequest) (*dto.LeaveDecisionResponse, error)
}

type leaveServiceImpl struct {
	leaveRepo   *repositories.LeaveRequestRepository
	facultyRepo *repositories.FacultyRepository
	notifier    email.EmailService
	now         func() time.Time
	logger      zerolog.Logger
}

// NewLeaveService creates a new leave service instance
func NewLeaveService(
	leaveRepo *repositories.LeaveRequestRepository,
	facultyRepo *repositories.FacultyRepository,
	notifier email.EmailService,
	logger zerolog.Logger,
) LeaveService {
	return &leaveServiceImpl{
		leaveRepo:   leaveRepo,
		facultyRepo: facultyRepo,
		notifier:    notifier,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *leaveServiceImpl) ListOwn(ctx context.Context, actor *Actor, q dto.LeaveListQuery) (*dto.ListResult[dto.LeaveItem, dto.LeaveStats], error) {
	return s.list(ctx, actor, q, query.AllFilter)
}

func (s *leaveServiceImpl) ListForApproval(ctx context.Context, actor *Actor, q dto.LeaveListQuery) (*dto.ListResult[dto.LeaveItem, dto.LeaveStats], error) {
	return s.list(ctx, actor, q, string(models.LeavePending))
}

func (s *leaveServiceImpl) list(ctx context.Context, actor *Actor, q dto.LeaveListQuery, defaultStatus string) (*dto.ListResult[dto.LeaveItem, dto.LeaveStats], error) {
	all, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving leave requests: %w", err)
	}

	status := q.Status
	if status == "" {
		status = defaultStatus
	}

	requests, err := query.Apply(ctx, all,
		query.InScope[models.LeaveRequest](actor.Scope()),
		func(l models.LeaveRequest) bool { return matchesStatus(status, l.Status) },
		func(l models.LeaveRequest) bool { return query.Contains(q.Search, l.FacultyName, l.Reason) },
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LeaveItem, len(requests))
	for i, l := range requests {
		items[i] = dto.NewLeaveItem(l)
	}

	filters := dto.FilterOptions{
		Statuses:      []string{query.AllFilter, string(models.LeavePending), string(models.LeaveApproved), string(models.LeaveRejected)},
		DefaultStatus: defaultStatus,
	}

	message := "No leave requests found"
	if !strings.EqualFold(status, query.AllFilter) {
		message = fmt.Sprintf("No %s leave requests found", strings.ToLower(status))
	}
	if q.Search != "" {
		message = emptyMessage("leave requests", true)
	}

	result := newListResult(items, LeaveStatsOf(items), q.Page, filters, message)
	return &result, nil
}

func matchesStatus(selection string, status models.LeaveStatus) bool {
	if selection == "" || strings.EqualFold(selection, query.AllFilter) {
		return true
	}
	return strings.EqualFold(selection, string(status))
}

// LeaveStatsOf counts a leave slice by status
func LeaveStatsOf(items []dto.LeaveItem) dto.LeaveStats {
	stats := dto.LeaveStats{Total: len(items)}
	for _, it := range items {
		switch it.Status {
		case models.LeaveApproved:
			stats.Approved++
		case models.LeavePending:
			stats.Pending++
		case models.LeaveRejected:
			stats.Rejected++
		}
	}
	return stats
}

// Submit validates a leave application and echoes it as a pending preview.
// Nothing is stored.
func (s *leaveServiceImpl) Submit(ctx context.Context, actor *Actor, req *dto.SubmitLeaveRequest) (*dto.Acknowledgement[dto.LeaveItem], error) {
	if models.LeaveDuration(req.StartDate, req.EndDate) == 0 {
		return nil, apperrors.NewValidationError("End date must not be before start date", map[string]interface{}{
			"endDate": "endDate must be on or after startDate",
		})
	}

	facultyID := actor.User.ID
	if member, err := s.facultyRepo.GetByName(ctx, actor.User.Name); err == nil {
		facultyID = member.ID
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	preview := models.LeaveRequest{
		FacultyID:   facultyID,
		FacultyName: actor.User.Name,
		Department:  actor.User.Department,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Description: strings.TrimSpace(req.Description),
		Status:      models.LeavePending,
		RequestDate: s.now().Format(models.DateLayout),
	}
	item := dto.NewLeaveItem(preview)

	s.logger.Info().
		Int64("userID", actor.User.ID).
		Str("startDate", req.StartDate).
		Str("endDate", req.EndDate).
		Str("reason", req.Reason).
		Int("durationDays", item.DurationDays).
		Msg("Leave request submitted")

	return &dto.Acknowledgement[dto.LeaveItem]{
		Accepted: true,
		Message:  "Leave request submitted for approval",
		Payload:  item,
	}, nil
}

func (s *leaveServiceImpl) Approve(ctx context.Context, actor *Actor, id int64) (*dto.LeaveDecisionResponse, error) {
	return s.decide(ctx, actor, id, models.LeaveApproved, "")
}

func (s *leaveServiceImpl) Reject(ctx context.Context, actor *Actor, id int64, req *dto.RejectLeaveRequest) (*dto.LeaveDecisionResponse, error) {
	return s.decide(ctx, actor, id, models.LeaveRejected, strings.TrimSpace(req.Reason))
}

// decide records a decision on a pending request inside the actor's scope.
// The store is not mutated; the decision is logged and the requester notified.
func (s *leaveServiceImpl) decide(ctx context.Context, actor *Actor, id int64, decision models.LeaveStatus, reason string) (*dto.LeaveDecisionResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Requests outside the scope are reported as missing, not forbidden.
	if !actor.Scope().Allows(*request) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrLeaveRequestNotFound)
	}
	if request.Status != models.LeavePending {
		return nil, fmt.Errorf("%w: %w (status %s)", apperrors.ErrConflict, apperrors.ErrLeaveNotPending, request.Status)
	}

	now := s.now()
	decided := *request
	decided.Status = decision
	switch decision {
	case models.LeaveApproved:
		decided.ApprovedBy = actor.User.Name
		decided.ApprovedDate = now.Format(models.DateLayout)
	case models.LeaveRejected:
		decided.RejectedBy = actor.User.Name
		decided.RejectedDate = now.Format(models.DateLayout)
		decided.RejectionReason = reason
	}

	s.logger.Info().
		Int64("leaveRequestId", id).
		Str("decision", string(decision)).
		Str("decidedBy", actor.User.Name).
		Str("rejectionReason", reason).
		Msg("Leave request decided")

	notified := s.notify(ctx, &decided)

	return &dto.LeaveDecisionResponse{
		Request:   dto.NewLeaveItem(decided),
		Decision:  string(decision),
		DecidedBy: actor.User.Name,
		DecidedAt: now,
		Notified:  notified,
	}, nil
}

// notify mails the requester. Failures are logged and never fail the decision.
func (s *leaveServiceImpl) notify(ctx context.Context, l *models.LeaveRequest) bool {
	if s.notifier == nil {
		return false
	}
	member, err := s.facultyRepo.GetByID(ctx, l.FacultyID)
	if err != nil {
		member, err = s.facultyRepo.GetByName(ctx, l.FacultyName)
	}
	if err != nil || member.Email == "" {
		s.logger.Warn().
			Int64("leaveRequestId", l.ID).
			Str("facultyName", l.FacultyName).
			Msg("No email address for leave requester, notification skipped")
		return false
	}

	decidedBy := l.ApprovedBy
	if l.Status == models.LeaveRejected {
		decidedBy = l.RejectedBy
	}
	sent, err := s.notifier.SendLeaveDecision(member.Email, member.Name, email.LeaveDecision{
		RequestID:       l.ID,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		Reason:          l.Reason,
		Status:          string(l.Status),
		DecidedBy:       decidedBy,
		RejectionReason: l.RejectionReason,
	})
	if err != nil {
		s.logger.Warn().Err(err).Int64("leaveRequestId", l.ID).Msg("Failed to send leave decision email")
		return false
	}
	return sent
}
