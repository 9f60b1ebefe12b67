package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

func leaveIDs(items []dto.LeaveItem) []int64 {
	ids := make([]int64, len(items))
	for i, l := range items {
		ids[i] = l.ID
	}
	return ids
}

func TestLeaveService_ListOwn(t *testing.T) {
	f := newFixture(t)
	svc := NewLeaveService(f.repos.LeaveRequestRepository, f.repos.FacultyRepository, nil, nopLogger)
	john := f.actor(t, "john.doe")

	tests := []struct {
		name    string
		query   dto.LeaveListQuery
		wantIDs []int64
	}{
		{name: "defaults to all", wantIDs: []int64{3, 4, 7}},
		{name: "approved only", query: dto.LeaveListQuery{Status: "Approved"}, wantIDs: []int64{3, 7}},
		{name: "status is case insensitive", query: dto.LeaveListQuery{Status: "rejected"}, wantIDs: []int64{4}},
		{name: "search by reason", query: dto.LeaveListQuery{Search: "conf"}, wantIDs: []int64{3, 7}},
		{name: "nothing pending", query: dto.LeaveListQuery{Status: "Pending"}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.ListOwn(context.Background(), john, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, leaveIDs(result.Items))
			assert.Equal(t, LeaveStatsOf(result.Items), result.Stats)
			assert.Equal(t, len(tt.wantIDs) == 0, result.Empty)
		})
	}

	result, err := svc.ListOwn(context.Background(), john, dto.LeaveListQuery{})
	require.NoError(t, err)
	assert.Equal(t, dto.LeaveStats{Total: 3, Approved: 2, Rejected: 1}, result.Stats)
	for _, it := range result.Items {
		if it.ID == 3 {
			assert.Equal(t, 2, it.DurationDays)
		}
	}
}

func TestLeaveService_ListForApproval(t *testing.T) {
	f := newFixture(t)
	svc := NewLeaveService(f.repos.LeaveRequestRepository, f.repos.FacultyRepository, nil, nopLogger)
	alice := f.actor(t, "alice.johnson")

	pending, err := svc.ListForApproval(context.Background(), alice, dto.LeaveListQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, leaveIDs(pending.Items))
	assert.Equal(t, string(models.LeavePending), pending.Filters.DefaultStatus)

	all, err := svc.ListForApproval(context.Background(), alice, dto.LeaveListQuery{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 5, 7}, leaveIDs(all.Items))
}

func TestLeaveService_Decide(t *testing.T) {
	tests := []struct {
		name       string
		id         int64
		reject     bool
		wantErr    error
		wantStatus models.LeaveStatus
	}{
		{name: "approve pending", id: 5, wantStatus: models.LeaveApproved},
		{name: "reject pending", id: 5, reject: true, wantStatus: models.LeaveRejected},
		{name: "other department is not found", id: 2, wantErr: apperrors.ErrResourceNotFound},
		{name: "other department on reject", id: 6, reject: true, wantErr: apperrors.ErrResourceNotFound},
		{name: "already approved", id: 3, wantErr: apperrors.ErrConflict},
		{name: "already rejected", id: 4, reject: true, wantErr: apperrors.ErrConflict},
		{name: "missing", id: 99, wantErr: apperrors.ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			notifier := &fakeNotifier{}
			svc := NewLeaveService(f.repos.LeaveRequestRepository, f.repos.FacultyRepository, notifier, nopLogger)
			alice := f.actor(t, "alice.johnson")

			var (
				resp *dto.LeaveDecisionResponse
				err  error
			)
			if tt.reject {
				resp, err = svc.Reject(context.Background(), alice, tt.id, &dto.RejectLeaveRequest{Reason: "Exam week"})
			} else {
				resp, err = svc.Approve(context.Background(), alice, tt.id)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, notifier.sent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Request.Status)
			assert.Equal(t, "Dr. Alice Johnson", resp.DecidedBy)
			assert.True(t, resp.Notified)
			require.Len(t, notifier.sent, 1)
			assert.Equal(t, []string{"daniel.kim@university.edu"}, notifier.to)
			if tt.reject {
				assert.Equal(t, "Exam week", resp.Request.RejectionReason)
			}

			// The store keeps the original status.
			stored, err := f.repos.LeaveRequestRepository.GetByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, models.LeavePending, stored.Status)
		})
	}
}

func TestLeaveService_DecideNotifyFailure(t *testing.T) {
	f := newFixture(t)
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewLeaveService(f.repos.LeaveRequestRepository, f.repos.FacultyRepository, notifier, nopLogger)

	resp, err := svc.Approve(context.Background(), f.actor(t, "alice.johnson"), 5)
	require.NoError(t, err)
	assert.False(t, resp.Notified)
}

func TestLeaveService_Submit(t *testing.T) {
	f := newFixture(t)
	svc := NewLeaveService(f.repos.LeaveRequestRepository, f.repos.FacultyRepository, nil, nopLogger)
	john := f.actor(t, "john.doe")

	ack, err := svc.Submit(context.Background(), john, &dto.SubmitLeaveRequest{
		StartDate: "2024-12-20", EndDate: "2024-12-22", Reason: "Conference",
	})
	require.NoError(t, err)
	assert.True(t, ack.Accepted)
	assert.Equal(t, models.LeavePending, ack.Payload.Status)
	assert.Equal(t, 3, ack.Payload.DurationDays)
	assert.Equal(t, int64(1), ack.Payload.FacultyID)

	_, err = svc.Submit(context.Background(), john, &dto.SubmitLeaveRequest{
		StartDate: "2024-12-22", EndDate: "2024-12-20", Reason: "Medical",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	all, err := f.repos.LeaveRequestRepository.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 7, "submissions are not stored")
}
