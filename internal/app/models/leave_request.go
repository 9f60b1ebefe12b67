package models

import "time"

// LeaveStatus is the review state of a leave request
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// LeaveReasons are the accepted reasons for a leave request
var LeaveReasons = []string{"Medical", "Personal", "Conference", "Family", "Other"}

// DateLayout is the calendar date format used for leave dates
const DateLayout = "2006-01-02"

// LeaveRequest is a faculty member's request for time off
type LeaveRequest struct {
	ID              int64       `json:"id" example:"1"`
	FacultyID       int64       `json:"facultyId" example:"3"`
	FacultyName     string      `json:"facultyName" example:"Dr. Bob Wilson"`
	Department      string      `json:"department" example:"Physics"`
	StartDate       string      `json:"startDate" example:"2024-12-20"`
	EndDate         string      `json:"endDate" example:"2024-12-22"`
	Reason          string      `json:"reason" example:"Medical"`
	Description     string      `json:"description,omitempty"`
	Status          LeaveStatus `json:"status" example:"Pending"`
	RequestDate     string      `json:"requestDate" example:"2024-12-15"`
	ApprovedBy      string      `json:"approvedBy,omitempty"`
	ApprovedDate    string      `json:"approvedDate,omitempty"`
	RejectedBy      string      `json:"rejectedBy,omitempty"`
	RejectedDate    string      `json:"rejectedDate,omitempty"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
}

func (l LeaveRequest) ScopeDepartment() string { return l.Department }
func (l LeaveRequest) ScopeOwner() string      { return l.FacultyName }

// DurationDays counts the inclusive days between start and end.
// Unparseable dates yield 0.
func (l LeaveRequest) DurationDays() int {
	return LeaveDuration(l.StartDate, l.EndDate)
}

// LeaveDuration counts the inclusive days between two YYYY-MM-DD dates
func LeaveDuration(startDate, endDate string) int {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
