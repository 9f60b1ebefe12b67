package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// SubjectRepository reads the subject catalog
type SubjectRepository struct {
	db *db.MemoryDB
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(database *db.MemoryDB) *SubjectRepository {
	return &SubjectRepository{db: database}
}

// List returns every subject
func (r *SubjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := read(ctx, r.db, func(t *db.Tables) {
		subjects = append([]models.Subject(nil), t.Subjects...)
	})
	return subjects, err
}

// GetByID finds a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	var found *models.Subject
	err := read(ctx, r.db, func(t *db.Tables) {
		for _, s := range t.Subjects {
			if s.ID == id {
				s := s
				found = &s
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrSubjectNotFound)
	}
	return found, nil
}

// ResourceRepository reads classrooms and laboratories
type ResourceRepository struct {
	db *db.MemoryDB
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(database *db.MemoryDB) *ResourceRepository {
	return &ResourceRepository{db: database}
}

// List returns classrooms followed by laboratories
func (r *ResourceRepository) List(ctx context.Context) ([]models.Resource, error) {
	var out []models.Resource
	err := read(ctx, r.db, func(t *db.Tables) {
		out = make([]models.Resource, 0, len(t.Classrooms)+len(t.Laboratories))
		out = append(out, db.CloneResources(t.Classrooms)...)
		out = append(out, db.CloneResources(t.Laboratories)...)
	})
	return out, err
}

// ListByKind returns only classrooms or only laboratories
func (r *ResourceRepository) ListByKind(ctx context.Context, kind models.ResourceKind) ([]models.Resource, error) {
	var out []models.Resource
	err := read(ctx, r.db, func(t *db.Tables) {
		switch kind {
		case models.KindClassroom:
			out = db.CloneResources(t.Classrooms)
		case models.KindLaboratory:
			out = db.CloneResources(t.Laboratories)
		}
	})
	return out, err
}

// GetByID finds a resource by kind and ID
func (r *ResourceRepository) GetByID(ctx context.Context, kind models.ResourceKind, id int64) (*models.Resource, error) {
	items, err := r.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrResourceItemNotFound)
}

// BatchRepository reads student batches
type BatchRepository struct {
	db *db.MemoryDB
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(database *db.MemoryDB) *BatchRepository {
	return &BatchRepository{db: database}
}

// List returns every batch
func (r *BatchRepository) List(ctx context.Context) ([]models.StudentBatch, error) {
	var batches []models.StudentBatch
	err := read(ctx, r.db, func(t *db.Tables) {
		batches = append([]models.StudentBatch(nil), t.Batches...)
	})
	return batches, err
}
