package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"meeting-task-converter/internal/model"
	"meeting-task-converter/internal/task/repository"
)

// Store is the volatile in-process task repository. All data is lost on
// restart. Safe for concurrent use; every operation holds the mutex for its
// whole duration so callers never observe a half-applied mutation.
type Store struct {
	mu sync.Mutex

	nextTaskID int64
	tasks      map[int64]model.Task

	nextUserID int64
	users      map[int64]model.User

	now func() time.Time
}

// New creates an empty Store. Construct once per process and inject into
// request handlers; tests instantiate isolated instances.
func New() *Store {
	return &Store{
		nextTaskID: 1,
		tasks:      make(map[int64]model.Task),
		nextUserID: 1,
		users:      make(map[int64]model.User),
		now:        time.Now,
	}
}

// InsertTask assigns the next id (monotonic, never reused even after
// deletion), stamps createdAt and stores the record.
func (s *Store) InsertTask(ctx context.Context, opt repository.InsertTaskOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	priority := opt.Priority
	if !model.ValidPriority(priority) {
		priority = model.DefaultPriority
	}

	t := model.Task{
		ID:          s.nextTaskID,
		Description: opt.Description,
		Assignee:    opt.Assignee,
		Deadline:    opt.Deadline,
		Priority:    priority,
		CreatedAt:   s.now(),
	}
	s.nextTaskID++
	s.tasks[t.ID] = t

	return t, nil
}

// GetAllTasks returns all records sorted by createdAt descending.
// Ties are left in arbitrary order.
func (s *Store) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateTask merges provided fields into the existing record in place.
func (s *Store) UpdateTask(ctx context.Context, id int64, opt repository.UpdateTaskOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.Assignee != nil {
		t.Assignee = *opt.Assignee
	}
	if opt.Deadline != nil {
		t.Deadline = *opt.Deadline
	}
	if opt.Priority != nil {
		p := *opt.Priority
		if !model.ValidPriority(p) {
			p = model.DefaultPriority
		}
		t.Priority = p
	}

	s.tasks[id] = t
	return t, nil
}

// DeleteTask removes the record if present.
func (s *Store) DeleteTask(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}

// ClearTasks removes all task records. Issued ids are not reset.
func (s *Store) ClearTasks(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make(map[int64]model.Task)
	return nil
}

// InsertUser stores a user account record.
func (s *Store) InsertUser(ctx context.Context, opt repository.InsertUserOptions) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:        s.nextUserID,
		Username:  opt.Username,
		Email:     opt.Email,
		CreatedAt: s.now(),
	}
	s.nextUserID++
	s.users[u.ID] = u

	return u, nil
}

// GetUser returns a user account by id.
func (s *Store) GetUser(ctx context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}
