package repositories

import (
	"context"

	"github.com/yigit/schedulocity/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	FacultyRepository      *FacultyRepository
	SubjectRepository      *SubjectRepository
	ResourceRepository     *ResourceRepository
	BatchRepository        *BatchRepository
	TimetableRepository    *TimetableRepository
	LeaveRequestRepository *LeaveRequestRepository
	SessionRepository      SessionRepository
}

// NewRepositories initializes all repositories over the mock store
func NewRepositories(database *db.MemoryDB, sessions SessionRepository) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database),
		FacultyRepository:      NewFacultyRepository(database),
		SubjectRepository:      NewSubjectRepository(database),
		ResourceRepository:     NewResourceRepository(database),
		BatchRepository:        NewBatchRepository(database),
		TimetableRepository:    NewTimetableRepository(database),
		LeaveRequestRepository: NewLeaveRequestRepository(database),
		SessionRepository:      sessions,
	}
}

// read runs fn against the tables unless ctx is already done
func read(ctx context.Context, database *db.MemoryDB, fn func(t *db.Tables)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	database.Read(fn)
	return nil
}
