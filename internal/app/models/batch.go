package models

// StudentBatch is a cohort of students taught together
type StudentBatch struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"CS-2024-A"`
	Department string `json:"department" example:"Computer Science"`
	Year       int    `json:"year" example:"2024"`
	Semester   int    `json:"semester" example:"1"`
	Strength   int    `json:"strength" example:"60"`
}

func (b StudentBatch) ScopeDepartment() string { return b.Department }
func (b StudentBatch) ScopeOwner() string      { return "" }
