package repository

import (
	"context"
	"errors"

	"meeting-task-converter/internal/model"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// InsertTaskOptions carries the fields of a task before the store assigns
// its id and creation time.
type InsertTaskOptions struct {
	Description string
	Assignee    string
	Deadline    string
	Priority    model.Priority
}

// UpdateTaskOptions describes a partial update. Nil fields are not touched.
type UpdateTaskOptions struct {
	Description *string
	Assignee    *string
	Deadline    *string
	Priority    *model.Priority
}

// InsertUserOptions carries the fields of a user account before insertion.
type InsertUserOptions struct {
	Username string
	Email    string
}

// Repository is the task store contract. All operations are atomic with
// respect to each other; no caller observes a half-applied mutation.
type Repository interface {
	// InsertTask assigns the next id, stamps createdAt, defaults priority
	// and stores the record.
	InsertTask(ctx context.Context, opt InsertTaskOptions) (model.Task, error)

	// GetAllTasks returns every record sorted by createdAt descending.
	GetAllTasks(ctx context.Context) ([]model.Task, error)

	// UpdateTask merges provided fields into an existing record.
	// Returns ErrNotFound if the id is absent.
	UpdateTask(ctx context.Context, id int64, opt UpdateTaskOptions) (model.Task, error)

	// DeleteTask removes the record if present and reports whether a
	// removal occurred.
	DeleteTask(ctx context.Context, id int64) (bool, error)

	// ClearTasks removes all task records unconditionally.
	ClearTasks(ctx context.Context) error

	// InsertUser stores a user account record.
	InsertUser(ctx context.Context, opt InsertUserOptions) (model.User, error)

	// GetUser returns a user account by id, or ErrNotFound.
	GetUser(ctx context.Context, id int64) (model.User, error)
}
