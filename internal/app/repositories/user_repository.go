package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

// IUserRepository defines the user lookups needed by authentication
type IUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserRepository reads user accounts from the mock store
type UserRepository struct {
	db *db.MemoryDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.MemoryDB) *UserRepository {
	return &UserRepository{db: database}
}

// GetByUsername finds a user by exact, case-sensitive username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var found *models.User
	err := read(ctx, r.db, func(t *db.Tables) {
		for _, u := range t.Users {
			if u.Username == username {
				u := u
				found = &u
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrUserNotFound)
	}
	return found, nil
}

// GetByID finds a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var found *models.User
	err := read(ctx, r.db, func(t *db.Tables) {
		for _, u := range t.Users {
			if u.ID == id {
				u := u
				found = &u
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrUserNotFound)
	}
	return found, nil
}

// List returns every user
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := read(ctx, r.db, func(t *db.Tables) {
		users = append([]models.User(nil), t.Users...)
	})
	return users, err
}
