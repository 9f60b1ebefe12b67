package models

// ResourceKind separates classrooms from laboratories
type ResourceKind string

const (
	KindClassroom  ResourceKind = "classroom"
	KindLaboratory ResourceKind = "laboratory"
)

// ResourceStatus is the occupancy state of a room
type ResourceStatus string

const (
	StatusAvailable   ResourceStatus = "Available"
	StatusOccupied    ResourceStatus = "Occupied"
	StatusMaintenance ResourceStatus = "Maintenance"
)

// ResourceStatuses lists every status in display order
var ResourceStatuses = []ResourceStatus{StatusAvailable, StatusOccupied, StatusMaintenance}

// Resource is a bookable classroom or laboratory.
// Classroom IDs and laboratory IDs are independent sequences.
type Resource struct {
	ID        int64          `json:"id" example:"1"`
	Kind      ResourceKind   `json:"kind" example:"classroom"`
	Name      string         `json:"name" example:"Room 101"`
	Building  string         `json:"building" example:"Building A"`
	Capacity  int            `json:"capacity" example:"60"`
	Type      string         `json:"type" example:"Lecture Hall"`
	Equipment []string       `json:"equipment"`
	Status    ResourceStatus `json:"status" example:"Available"`
}

// Resources are not department-owned; only administrators see them.
func (r Resource) ScopeDepartment() string { return "" }
func (r Resource) ScopeOwner() string      { return "" }
