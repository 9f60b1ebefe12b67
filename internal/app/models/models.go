package models

// Role is the closed set of user roles
type Role string

const (
	RoleFaculty       Role = "faculty"
	RoleHOD           Role = "hod"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleFaculty, RoleHOD, RoleAdministrator:
		return true
	}
	return false
}

// ViewID identifies a navigable dashboard view
type ViewID string

const (
	ViewDashboard      ViewID = "dashboard"
	ViewSchedule       ViewID = "schedule"
	ViewAvailability   ViewID = "availability"
	ViewLeaveRequests  ViewID = "leave-requests"
	ViewProfile        ViewID = "profile"
	ViewTimetable      ViewID = "timetable"
	ViewFaculty        ViewID = "faculty"
	ViewSubjects       ViewID = "subjects"
	ViewReports        ViewID = "reports"
	ViewLeaveApprovals ViewID = "leave-approvals"
	ViewResources      ViewID = "resources"
	ViewAnalytics      ViewID = "analytics"
	ViewSystemConfig   ViewID = "system-config"
	ViewDataManagement ViewID = "data-management"
)

// Availability is a faculty member's current status
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBusy      Availability = "Busy"
	AvailabilityOnLeave   Availability = "On Leave"
)

// Availabilities lists every availability value in display order
var Availabilities = []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityOnLeave}

// Weekdays are the teaching days in calendar order
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeSlots are the fixed teaching slots in chronological order
var TimeSlots = []string{
	"09:00-10:00",
	"10:00-11:00",
	"11:15-12:15",
	"12:15-13:15",
	"14:00-15:00",
	"15:00-16:00",
	"16:15-17:15",
}

// Departments is the reference list of academic departments
var Departments = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Engineering",
	"Business",
	"English",
	"History",
	"Psychology",
	"Economics",
	"Sociology",
	"Philosophy",
	"Art",
	"Music",
	"Geography",
	"Political Science",
	"Anthropology",
	"Nursing",
	"Education",
}

// IsWeekday reports whether day is a teaching day
func IsWeekday(day string) bool {
	return indexOf(Weekdays, day) >= 0
}

// IsTimeSlot reports whether slot is one of the fixed slots
func IsTimeSlot(slot string) bool {
	return indexOf(TimeSlots, slot) >= 0
}

// WeekdayIndex returns the calendar position of day, or -1
func WeekdayIndex(day string) int {
	return indexOf(Weekdays, day)
}

// TimeSlotIndex returns the chronological position of slot, or -1
func TimeSlotIndex(slot string) int {
	return indexOf(TimeSlots, slot)
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}
