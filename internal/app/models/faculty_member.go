package models

// FacultyMember is a roster entry for a teaching staff member
type FacultyMember struct {
	ID           int64        `json:"id" example:"1"`
	Name         string       `json:"name" example:"Dr. John Doe"`
	Department   string       `json:"department" example:"Computer Science"`
	Subjects     []string     `json:"subjects"`
	Availability Availability `json:"availability" example:"Available"`
	Email        string       `json:"email" example:"john.doe@university.edu"`
	Phone        string       `json:"phone" example:"+1-555-0101"`
}

func (f FacultyMember) ScopeDepartment() string { return f.Department }
func (f FacultyMember) ScopeOwner() string      { return f.Name }

// Teaches reports whether the member's subject list contains subject
func (f FacultyMember) Teaches(subject string) bool {
	for _, s := range f.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
