package dto

import "time"

// SubmitLeaveRequest is a faculty member's leave application
type SubmitLeaveRequest struct {
	StartDate   string `json:"startDate" binding:"required,isodate" example:"2024-12-20"`
	EndDate     string `json:"endDate" binding:"required,isodate" example:"2024-12-22"`
	Reason      string `json:"reason" binding:"required,oneof=Medical Personal Conference Family Other" example:"Conference"`
	Description string `json:"description" binding:"max=500"`
}

// RejectLeaveRequest carries the reason for a rejection
type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500" example:"Exam week"`
}

// LeaveDecisionResponse describes an approval or rejection
type LeaveDecisionResponse struct {
	Request   LeaveItem `json:"request"`
	Decision  string    `json:"decision" example:"Approved"`
	DecidedBy string    `json:"decidedBy" example:"Dr. Alice Johnson"`
	DecidedAt time.Time `json:"decidedAt"`
	Notified  bool      `json:"notified"`
}
