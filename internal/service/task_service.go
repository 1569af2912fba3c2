package service

import (
	"context"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

// StatusFilter selects a subset of tasks by completion state.
type StatusFilter string

const (
	StatusFilterNone      StatusFilter = ""
	StatusFilterCompleted StatusFilter = "completed"
	StatusFilterPending   StatusFilter = "pending"
)

// TaskUpdate carries a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *bool
}

// TaskService coordinates task operations on behalf of an owner. The owner id
// always comes from the verified token subject, never from request payloads.
type TaskService interface {
	Create(ctx context.Context, ownerID int64, title, description string, status bool) (*domain.Task, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	List(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Filter(ctx context.Context, ownerID int64, filter StatusFilter) ([]domain.Task, error)
	Update(ctx context.Context, id, ownerID int64, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, ownerID int64, title, description string, status bool) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ValidationError{Msg: "the title field cannot be empty"}
	}

	task := &domain.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	return s.tasks.Get(ctx, id, ownerID)
}

func (s *taskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.tasks.List(ctx, ownerID)
}

func (s *taskService) Filter(ctx context.Context, ownerID int64, filter StatusFilter) ([]domain.Task, error) {
	switch filter {
	case StatusFilterCompleted:
		return s.tasks.ListByStatus(ctx, ownerID, true)
	case StatusFilterPending:
		return s.tasks.ListByStatus(ctx, ownerID, false)
	case StatusFilterNone:
		// no status given: all tasks, storage order
		return s.tasks.ListUnsorted(ctx, ownerID)
	default:
		return nil, ValidationError{Msg: "invalid status filter, use 'completed' or 'pending'"}
	}
}

func (s *taskService) Update(ctx context.Context, id, ownerID int64, update TaskUpdate) (*domain.Task, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, ValidationError{Msg: "the title field cannot be empty"}
	}

	task, err := s.tasks.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id, ownerID int64) error {
	return s.tasks.Delete(ctx, id, ownerID)
}
