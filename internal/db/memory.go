package db

import (
	"sync"

	"github.com/yigit/schedulocity/internal/app/models"
)

// Tables is the full contents of the mock store
type Tables struct {
	Users         []models.User           `json:"users"`
	Faculty       []models.FacultyMember  `json:"faculty"`
	Subjects      []models.Subject        `json:"subjects"`
	Classrooms    []models.Resource       `json:"classrooms"`
	Laboratories  []models.Resource       `json:"laboratories"`
	Batches       []models.StudentBatch   `json:"batches"`
	Timetable     []models.TimetableEntry `json:"timetable"`
	LeaveRequests []models.LeaveRequest   `json:"leaveRequests"`
}

// MemoryDB holds the seeded collections for the lifetime of the process.
// The application never mutates the tables after seeding; the lock only
// guards the one-time Load against concurrent readers.
type MemoryDB struct {
	mu     sync.RWMutex
	tables Tables
}

// NewMemoryDB creates an empty store
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{}
}

// Load replaces the store contents
func (d *MemoryDB) Load(t Tables) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables = t
}

// Read runs fn with shared access to the tables.
// fn must not retain or modify the slices it is given.
func (d *MemoryDB) Read(fn func(t *Tables)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(&d.tables)
}

// Snapshot returns a deep copy of every table
func (d *MemoryDB) Snapshot() Tables {
	var out Tables
	d.Read(func(t *Tables) {
		out = Tables{
			Users:         append([]models.User(nil), t.Users...),
			Faculty:       CloneFaculty(t.Faculty),
			Subjects:      append([]models.Subject(nil), t.Subjects...),
			Classrooms:    CloneResources(t.Classrooms),
			Laboratories:  CloneResources(t.Laboratories),
			Batches:       append([]models.StudentBatch(nil), t.Batches...),
			Timetable:     append([]models.TimetableEntry(nil), t.Timetable...),
			LeaveRequests: append([]models.LeaveRequest(nil), t.LeaveRequests...),
		}
	})
	return out
}

// Counts returns the row count of each table keyed by table name
func (d *MemoryDB) Counts() map[string]int {
	counts := make(map[string]int, 8)
	d.Read(func(t *Tables) {
		counts["users"] = len(t.Users)
		counts["faculty"] = len(t.Faculty)
		counts["subjects"] = len(t.Subjects)
		counts["classrooms"] = len(t.Classrooms)
		counts["laboratories"] = len(t.Laboratories)
		counts["batches"] = len(t.Batches)
		counts["timetable"] = len(t.Timetable)
		counts["leaveRequests"] = len(t.LeaveRequests)
	})
	return counts
}

// CloneFaculty copies members including their subject slices
func CloneFaculty(in []models.FacultyMember) []models.FacultyMember {
	out := make([]models.FacultyMember, len(in))
	for i, f := range in {
		f.Subjects = append([]string(nil), f.Subjects...)
		out[i] = f
	}
	return out
}

// CloneResources copies resources including their equipment slices
func CloneResources(in []models.Resource) []models.Resource {
	out := make([]models.Resource, len(in))
	for i, r := range in {
		r.Equipment = append([]string(nil), r.Equipment...)
		out[i] = r
	}
	return out
}
