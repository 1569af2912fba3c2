package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// TaskRepository exposes persistence operations for Task records. Every read
// and write is scoped by owner id, so a task belonging to another user is
// indistinguishable from a missing one.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	// List returns the owner's tasks newest first.
	List(ctx context.Context, ownerID int64) ([]domain.Task, error)
	// ListByStatus returns the owner's tasks with the given completed flag,
	// newest first.
	ListByStatus(ctx context.Context, ownerID int64, completed bool) ([]domain.Task, error)
	// ListUnsorted returns the owner's tasks in storage order. The filter
	// endpoint without a status parameter uses this path and does not sort.
	ListUnsorted(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id, ownerID int64) error
}
