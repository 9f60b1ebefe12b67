package dto

import "github.com/yigit/schedulocity/internal/app/models"

// TimetableQuery filters the timetable and the personal schedule
type TimetableQuery struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Faculty    string `form:"faculty"`
	Day        string `form:"day" binding:"omitempty,weekday|eq=all"`
}

// TimetableStats summarizes a timetable slice
type TimetableStats struct {
	Total int            `json:"total"`
	ByDay map[string]int `json:"byDay"`
}

// WeekGrid maps day to time slot to the entries in that cell
type WeekGrid map[string]map[string][]models.TimetableEntry

// TimetableResponse is a filtered timetable plus its weekly grid
type TimetableResponse struct {
	ListResult[models.TimetableEntry, TimetableStats]
	Days      []string `json:"days"`
	TimeSlots []string `json:"timeSlots"`
	Grid      WeekGrid `json:"grid"`
}

// ConflictKind names what is double-booked
type ConflictKind string

const (
	ConflictFaculty   ConflictKind = "faculty"
	ConflictClassroom ConflictKind = "classroom"
)

// Conflict is one day/slot cell where a faculty member or a room is booked
// more than once
type Conflict struct {
	Kind     ConflictKind            `json:"kind" example:"faculty"`
	Name     string                  `json:"name" example:"Dr. John Doe"`
	Day      string                  `json:"day" example:"Monday"`
	TimeSlot string                  `json:"timeSlot" example:"09:00-10:00"`
	Entries  []models.TimetableEntry `json:"entries"`
}

// ConflictReport lists every detected double-booking
type ConflictReport struct {
	Conflicts       []Conflict `json:"conflicts"`
	FacultyCount    int        `json:"facultyConflicts"`
	ClassroomCount  int        `json:"classroomConflicts"`
	EntriesExamined int        `json:"entriesExamined"`
}
