package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
	"github.com/rfelton/taskboard-api/internal/store"
)

// TaskPatch describes a partial update. Nil fields are left unchanged.
// DueDateSet distinguishes "set due_date to null" from "due_date absent".
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	DueDateSet  bool
	Completed   *bool
}

// TaskService provides caller-scoped task operations. The callerID parameter
// on every method is the authenticated user's identity; tasks belonging to
// anyone else are invisible, and every failure to find a task is reported as
// store.ErrTaskNotFound regardless of whether the task exists for another
// user.
type TaskService interface {
	// Create creates a task owned by callerID. The owner is forced here;
	// request payloads carry no owner field and could not override it anyway.
	Create(ctx context.Context, callerID uuid.UUID, title, description string, dueDate *time.Time) (*domain.Task, error)

	// Get retrieves one of the caller's tasks.
	Get(ctx context.Context, callerID, taskID uuid.UUID) (*domain.Task, error)

	// List retrieves the caller's tasks matching the filter.
	List(ctx context.Context, callerID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)

	// Replace overwrites all mutable fields of one of the caller's tasks.
	Replace(ctx context.Context, callerID, taskID uuid.UUID, title, description string, dueDate *time.Time, completed bool) (*domain.Task, error)

	// Patch applies a partial update to one of the caller's tasks.
	Patch(ctx context.Context, callerID, taskID uuid.UUID, patch TaskPatch) (*domain.Task, error)

	// Delete removes one of the caller's tasks. Deleting an absent or
	// non-owned task returns store.ErrTaskNotFound, on every attempt.
	Delete(ctx context.Context, callerID, taskID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) *TaskServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    log.With("component", "task_service"),
	}
}

var _ TaskService = (*TaskServiceImpl)(nil)

// Create creates a task owned by the caller.
func (s *TaskServiceImpl) Create(
	ctx context.Context,
	callerID uuid.UUID,
	title, description string,
	dueDate *time.Time,
) (*domain.Task, error) {
	task, err := domain.NewTask(callerID, title, description, dueDate)
	if err != nil {
		s.logger.Debug("invalid task input",
			"error", err,
			"user_id", callerID)
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"user_id", callerID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get retrieves one of the caller's tasks.
func (s *TaskServiceImpl) Get(
	ctx context.Context,
	callerID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, callerID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve task",
			"error", err,
			"task_id", taskID,
			"user_id", callerID)
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return task, nil
}

// List retrieves the caller's tasks matching the filter.
func (s *TaskServiceImpl) List(
	ctx context.Context,
	callerID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx, callerID, filter)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", callerID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Replace overwrites all mutable fields of one of the caller's tasks.
func (s *TaskServiceImpl) Replace(
	ctx context.Context,
	callerID, taskID uuid.UUID,
	title, description string,
	dueDate *time.Time,
	completed bool,
) (*domain.Task, error) {
	task, err := s.Get(ctx, callerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.DueDate = dueDate
	task.Completed = completed

	return s.save(ctx, callerID, task)
}

// Patch applies a partial update to one of the caller's tasks.
func (s *TaskServiceImpl) Patch(
	ctx context.Context,
	callerID, taskID uuid.UUID,
	patch TaskPatch,
) (*domain.Task, error) {
	task, err := s.Get(ctx, callerID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	return s.save(ctx, callerID, task)
}

func (s *TaskServiceImpl) save(
	ctx context.Context,
	callerID uuid.UUID,
	task *domain.Task,
) (*domain.Task, error) {
	if err := s.taskStore.Update(ctx, callerID, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) || errors.Is(err, domain.ErrTaskTitleEmpty) ||
			errors.Is(err, domain.ErrTaskTitleTooLong) {
			return nil, err
		}
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", task.ID,
			"user_id", callerID)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes one of the caller's tasks.
func (s *TaskServiceImpl) Delete(ctx context.Context, callerID, taskID uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, callerID, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", taskID,
			"user_id", callerID)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted",
		"task_id", taskID,
		"user_id", callerID)
	return nil
}
