package models

// TimetableEntry places one class in a day/slot cell.
// Faculty and Classroom are display names, not foreign keys, and nothing
// prevents two entries from sharing a faculty or room in the same cell.
type TimetableEntry struct {
	ID         int64  `json:"id" example:"1"`
	Day        string `json:"day" example:"Monday"`
	TimeSlot   string `json:"timeSlot" example:"09:00-10:00"`
	Subject    string `json:"subject" example:"Programming Fundamentals"`
	Faculty    string `json:"faculty" example:"Dr. John Doe"`
	Classroom  string `json:"classroom" example:"Room 101"`
	Batch      string `json:"batch" example:"CS-2024-A"`
	Department string `json:"department" example:"Computer Science"`
}

func (e TimetableEntry) ScopeDepartment() string { return e.Department }
func (e TimetableEntry) ScopeOwner() string      { return e.Faculty }
