package dto

import "github.com/yigit/schedulocity/internal/app/models"

// ListResult is the response of every filtered list view. Stats always
// describe the whole filtered set, not just the returned page.
type ListResult[T any, S any] struct {
	Items        []T             `json:"items"`
	Stats        S               `json:"stats"`
	Empty        bool            `json:"empty"`
	EmptyMessage string          `json:"emptyMessage,omitempty"`
	Filters      FilterOptions   `json:"filters"`
	Pagination   *PaginationInfo `json:"pagination,omitempty"`
}

// FilterOptions tells the client which selectors it may show
type FilterOptions struct {
	DepartmentSelector bool     `json:"departmentSelector"`
	FacultySelector    bool     `json:"facultySelector,omitempty"`
	Departments        []string `json:"departments,omitempty"`
	Faculty            []string `json:"faculty,omitempty"`
	Statuses           []string `json:"statuses,omitempty"`
	Semesters          []int    `json:"semesters,omitempty"`
	Buildings          []string `json:"buildings,omitempty"`
	Kinds              []string `json:"kinds,omitempty"`
	Days               []string `json:"days,omitempty"`
	DefaultStatus      string   `json:"defaultStatus,omitempty"`
}

// Page selects a slice of a list. Zero values disable paging.
type Page struct {
	Page int `form:"page" binding:"omitempty,min=1"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

// FacultyListQuery filters the faculty directory
type FacultyListQuery struct {
	Search       string `form:"search"`
	Department   string `form:"department"`
	Availability string `form:"availability"`
	Page
}

// FacultyStats summarizes a faculty list
type FacultyStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Busy      int `json:"busy"`
	OnLeave   int `json:"onLeave"`
}

// SubjectListQuery filters the subject catalog
type SubjectListQuery struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Semester   int    `form:"semester" binding:"omitempty,min=1,max=8"`
	Page
}

// SubjectItem is a subject with the faculty who teach it
type SubjectItem struct {
	models.Subject
	AssignedFaculty []string `json:"assignedFaculty"`
}

// SubjectStats summarizes a subject list
type SubjectStats struct {
	Total           int     `json:"total"`
	TotalCredits    int     `json:"totalCredits"`
	AverageCredits  float64 `json:"averageCredits"`
	AssignedFaculty int     `json:"assignedFaculty"`
}

// ResourceListQuery filters classrooms and laboratories
type ResourceListQuery struct {
	Search   string `form:"search"`
	Kind     string `form:"kind" binding:"omitempty,oneof=all classroom laboratory"`
	Building string `form:"building"`
	Status   string `form:"status" binding:"omitempty,oneof=all Available Occupied Maintenance"`
	Page
}

// ResourceStats summarizes a resource list
type ResourceStats struct {
	Total           int `json:"total"`
	Available       int `json:"available"`
	Occupied        int `json:"occupied"`
	Maintenance     int `json:"maintenance"`
	TotalCapacity   int `json:"totalCapacity"`
	AverageCapacity int `json:"averageCapacity"`
}

// LeaveListQuery filters leave requests
type LeaveListQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=all Pending Approved Rejected pending approved rejected"`
	Page
}

// LeaveItem is a leave request with its inclusive length in days
type LeaveItem struct {
	models.LeaveRequest
	DurationDays int `json:"durationDays" example:"3"`
}

// NewLeaveItem decorates a leave request
func NewLeaveItem(l models.LeaveRequest) LeaveItem {
	return LeaveItem{LeaveRequest: l, DurationDays: l.DurationDays()}
}

// LeaveStats summarizes a leave list
type LeaveStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}
