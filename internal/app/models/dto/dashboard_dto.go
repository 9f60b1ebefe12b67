package dto

import (
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/models"
)

// DashboardResponse holds the dashboard of exactly one role
type DashboardResponse struct {
	Role          models.Role             `json:"role" example:"faculty"`
	Faculty       *FacultyDashboard       `json:"faculty,omitempty"`
	HOD           *HODDashboard           `json:"hod,omitempty"`
	Administrator *AdministratorDashboard `json:"administrator,omitempty"`
}

// FacultyDashboard is the landing view of a faculty member
type FacultyDashboard struct {
	TodayClasses   []models.TimetableEntry `json:"todayClasses"`
	TotalClasses   int                     `json:"totalClasses"`
	WeeklyHours    int                     `json:"weeklyHours"`
	SubjectsTaught int                     `json:"subjectsTaught"`
	Leave          LeaveStats              `json:"leave"`
	Availability   models.Availability     `json:"availability,omitempty"`
}

// HODDashboard is the landing view of a head of department
type HODDashboard struct {
	Department         string `json:"department" example:"Computer Science"`
	TotalFaculty       int    `json:"totalFaculty"`
	AvailableFaculty   int    `json:"availableFaculty"`
	FacultyUtilization int    `json:"facultyUtilization" example:"100"`
	TotalSubjects      int    `json:"totalSubjects"`
	PendingLeave       int    `json:"pendingLeave"`
	WeeklyClasses      int    `json:"weeklyClasses"`
}

// DepartmentOverview is one row of the administrator's department table
type DepartmentOverview struct {
	Department          string           `json:"department"`
	Faculty             int              `json:"faculty"`
	Subjects            int              `json:"subjects"`
	ScheduleUtilization analytics.Metric `json:"scheduleUtilization"`
}

// AdministratorDashboard is the landing view of an administrator
type AdministratorDashboard struct {
	TotalFaculty     int                  `json:"totalFaculty"`
	AvailableFaculty int                  `json:"availableFaculty"`
	TotalSubjects    int                  `json:"totalSubjects"`
	Classrooms       int                  `json:"classrooms"`
	Laboratories     int                  `json:"laboratories"`
	Batches          int                  `json:"batches"`
	Students         int                  `json:"students"`
	Departments      []DepartmentOverview `json:"departments"`
}

// FacultyReportRow is one faculty member in the department report
type FacultyReportRow struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Subjects     int                 `json:"subjects"`
	WeeklyHours  int                 `json:"weeklyHours"`
	Utilization  analytics.Metric    `json:"utilization"`
	Availability models.Availability `json:"availability"`
}

// SubjectReportRow is one subject in the department report
type SubjectReportRow struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Credits  int                `json:"credits"`
	Semester int                `json:"semester"`
	Metrics  []analytics.Metric `json:"metrics"`
}

// DepartmentMetrics are the headline numbers of one department
type DepartmentMetrics struct {
	TotalFaculty     int `json:"totalFaculty"`
	AvailableFaculty int `json:"availableFaculty"`
	TotalSubjects    int `json:"totalSubjects"`
	TotalCredits     int `json:"totalCredits"`
}

// ScheduleStats describes the weekly load of a timetable slice
type ScheduleStats struct {
	TotalClasses   int            `json:"totalClasses"`
	BusiestSlot    string         `json:"busiestSlot,omitempty"`
	LeastBusyDay   string         `json:"leastBusyDay,omitempty"`
	ClassesPerSlot map[string]int `json:"classesPerSlot"`
}

// ReportsResponse is the head-of-department report view
type ReportsResponse struct {
	Department string             `json:"department"`
	Faculty    []FacultyReportRow `json:"faculty"`
	Subjects   []SubjectReportRow `json:"subjects"`
	Metrics    DepartmentMetrics  `json:"metrics"`
	Schedule   ScheduleStats      `json:"schedule"`
	LeaveRate  analytics.Metric   `json:"leaveApprovalRate"`
}

// DepartmentBreakdown is one department in the analytics view
type DepartmentBreakdown struct {
	Department       string `json:"department"`
	Faculty          int    `json:"faculty"`
	AvailableFaculty int    `json:"availableFaculty"`
	Subjects         int    `json:"subjects"`
	Students         int    `json:"students"`
	WeeklyClasses    int    `json:"weeklyClasses"`
}

// AnalyticsResponse is the administrator analytics view
type AnalyticsResponse struct {
	TotalFaculty  int                   `json:"totalFaculty"`
	TotalSubjects int                   `json:"totalSubjects"`
	TotalRooms    int                   `json:"totalRooms"`
	TotalStudents int                   `json:"totalStudents"`
	Departments   []DepartmentBreakdown `json:"departments"`
	Metrics       []analytics.Metric    `json:"metrics"`
}
