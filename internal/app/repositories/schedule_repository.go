package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// TimetableRepository reads timetable entries
type TimetableRepository struct {
	db *db.MemoryDB
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(database *db.MemoryDB) *TimetableRepository {
	return &TimetableRepository{db: database}
}

// List returns every entry in insertion order
func (r *TimetableRepository) List(ctx context.Context) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	err := read(ctx, r.db, func(t *db.Tables) {
		entries = append([]models.TimetableEntry(nil), t.Timetable...)
	})
	return entries, err
}

// LeaveRequestRepository reads leave requests
type LeaveRequestRepository struct {
	db *db.MemoryDB
}

// NewLeaveRequestRepository creates a new LeaveRequestRepository
func NewLeaveRequestRepository(database *db.MemoryDB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: database}
}

// List returns every leave request
func (r *LeaveRequestRepository) List(ctx context.Context) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	err := read(ctx, r.db, func(t *db.Tables) {
		requests = append([]models.LeaveRequest(nil), t.LeaveRequests...)
	})
	return requests, err
}

// GetByID finds a leave request by ID
func (r *LeaveRequestRepository) GetByID(ctx context.Context, id int64) (*models.LeaveRequest, error) {
	var found *models.LeaveRequest
	err := read(ctx, r.db, func(t *db.Tables) {
		for _, l := range t.LeaveRequests {
			if l.ID == id {
				l := l
				found = &l
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrLeaveRequestNotFound)
	}
	return found, nil
}
