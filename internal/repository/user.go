package repository

import (
	"context"
	"errors"

	"task-tracker/internal/domain"
)

var (
	// ErrNotFound is returned when a requested record does not exist, or
	// exists but is not visible to the caller.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user insert violates the email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
