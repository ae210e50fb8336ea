package usecase

import (
	"context"
	"errors"
	"fmt"

	"meeting-task-converter/internal/model"
	"meeting-task-converter/internal/task"
	"meeting-task-converter/internal/task/repository"
)

// List returns all tasks, newest first.
func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update merges the provided fields into an existing task.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	opt := repository.UpdateTaskOptions{
		Description: input.Description,
		Assignee:    input.Assignee,
		Deadline:    input.Deadline,
	}

	if input.Priority != nil {
		p := model.Priority(*input.Priority)
		if !model.ValidPriority(p) {
			return model.Task{}, task.ErrInvalidPriority
		}
		opt.Priority = &p
	}

	updated, err := uc.repo.UpdateTask(ctx, input.ID, opt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("update task %d: %w", input.ID, err)
	}

	uc.l.Infof(ctx, "task %d updated", input.ID)
	return updated, nil
}

// Delete removes a single task.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	removed, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if !removed {
		return task.ErrNotFound
	}

	uc.l.Infof(ctx, "task %d deleted", id)
	return nil
}

// Clear removes all tasks unconditionally.
func (uc *implUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.ClearTasks(ctx); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	uc.l.Info(ctx, "all tasks cleared")
	return nil
}
