package models

// Subject is a catalog course
type Subject struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Programming Fundamentals"`
	Department string `json:"department" example:"Computer Science"`
	Credits    int    `json:"credits" example:"3"`
	Semester   int    `json:"semester" example:"1"`
}

func (s Subject) ScopeDepartment() string { return s.Department }
func (s Subject) ScopeOwner() string      { return "" }
