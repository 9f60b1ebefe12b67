package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// FacultyRepository reads the faculty roster
type FacultyRepository struct {
	db *db.MemoryDB
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(database *db.MemoryDB) *FacultyRepository {
	return &FacultyRepository{db: database}
}

// List returns the roster in ID order
func (r *FacultyRepository) List(ctx context.Context) ([]models.FacultyMember, error) {
	var members []models.FacultyMember
	err := read(ctx, r.db, func(t *db.Tables) {
		members = db.CloneFaculty(t.Faculty)
	})
	return members, err
}

// GetByID finds a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.FacultyMember, error) {
	return r.find(ctx, func(f models.FacultyMember) bool { return f.ID == id })
}

// GetByName finds a faculty member by exact display name
func (r *FacultyRepository) GetByName(ctx context.Context, name string) (*models.FacultyMember, error) {
	return r.find(ctx, func(f models.FacultyMember) bool { return f.Name == name })
}

func (r *FacultyRepository) find(ctx context.Context, match func(models.FacultyMember) bool) (*models.FacultyMember, error) {
	var found *models.FacultyMember
	err := read(ctx, r.db, func(t *db.Tables) {
		for _, f := range t.Faculty {
			if match(f) {
				clone := db.CloneFaculty([]models.FacultyMember{f})[0]
				found = &clone
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrFacultyNotFound)
	}
	return found, nil
}
