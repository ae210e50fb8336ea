package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"meeting-task-converter/internal/model"
	"meeting-task-converter/internal/task/repository"
)

// fixedClock returns a clock that advances one second per call, so every
// insert gets a distinct createdAt.
func fixedClock() func() time.Time {
	t := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newStore() *Store {
	s := New()
	s.now = fixedClock()
	return s
}

func insert(t *testing.T, s *Store, desc string) model.Task {
	t.Helper()
	task, err := s.InsertTask(context.Background(), repository.InsertTaskOptions{
		Description: desc,
		Assignee:    "Aman",
		Deadline:    "10pm tomorrow",
		Priority:    model.PriorityP3,
	})
	if err != nil {
		t.Fatalf("InsertTask: %v", err)
	}
	return task
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		task := insert(t, s, "task")
		if seen[task.ID] {
			t.Fatalf("id %d issued twice", task.ID)
		}
		seen[task.ID] = true
		if task.ID != int64(i+1) {
			t.Errorf("expected id %d, got %d", i+1, task.ID)
		}
	}

	// Deleting must not free ids for reuse.
	if _, err := s.DeleteTask(ctx, 5); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	task := insert(t, s, "after delete")
	if task.ID != 6 {
		t.Errorf("deleted id must not be reused: got %d", task.ID)
	}
}

func TestInsertDefaultsPriority(t *testing.T) {
	s := newStore()

	task, err := s.InsertTask(context.Background(), repository.InsertTaskOptions{
		Description: "x", Assignee: "y", Deadline: "z",
	})
	if err != nil {
		t.Fatalf("InsertTask: %v", err)
	}
	if task.Priority != model.PriorityP3 {
		t.Errorf("expected default P3, got %s", task.Priority)
	}
}

func TestGetAllTasksSortedDescending(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		insert(t, s, "task")
	}

	tasks, err := s.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].CreatedAt.After(tasks[i-1].CreatedAt) {
			t.Errorf("tasks not sorted by createdAt descending at index %d", i)
		}
	}
	if tasks[0].ID != 4 {
		t.Errorf("most recent insert must come first, got id %d", tasks[0].ID)
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	orig := insert(t, s, "write report")

	p1 := model.PriorityP1
	updated, err := s.UpdateTask(ctx, orig.ID, repository.UpdateTaskOptions{Priority: &p1})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if updated.Priority != model.PriorityP1 {
		t.Errorf("priority not updated: %s", updated.Priority)
	}
	if updated.Description != orig.Description ||
		updated.Assignee != orig.Assignee ||
		updated.Deadline != orig.Deadline ||
		!updated.CreatedAt.Equal(orig.CreatedAt) ||
		updated.ID != orig.ID {
		t.Errorf("untouched fields changed: %+v vs %+v", updated, orig)
	}
}

func TestUpdateNotFoundLeavesStoreUnchanged(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	insert(t, s, "one")
	before, _ := s.GetAllTasks(ctx)

	desc := "ghost"
	_, err := s.UpdateTask(ctx, 999, repository.UpdateTaskOptions{Description: &desc})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, _ := s.GetAllTasks(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Error("store state changed after not-found update")
	}
}

func TestDeleteSemantics(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	task := insert(t, s, "one")
	insert(t, s, "two")

	removed, err := s.DeleteTask(ctx, task.ID)
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}

	tasks, _ := s.GetAllTasks(ctx)
	if len(tasks) != 1 {
		t.Errorf("expected exactly one record removed, %d remain", len(tasks))
	}

	// Repeating the same delete changes nothing.
	removed, err = s.DeleteTask(ctx, task.ID)
	if err != nil || removed {
		t.Fatalf("second delete must report false, got removed=%v err=%v", removed, err)
	}
	tasks, _ = s.GetAllTasks(ctx)
	if len(tasks) != 1 {
		t.Errorf("second delete must not change the store, %d remain", len(tasks))
	}
}

func TestClear(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		insert(t, s, "task")
	}
	if err := s.ClearTasks(ctx); err != nil {
		t.Fatalf("ClearTasks: %v", err)
	}

	tasks, _ := s.GetAllTasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("expected empty list after clear, got %d", len(tasks))
	}

	// Ids continue from where they left off.
	task := insert(t, s, "after clear")
	if task.ID != 4 {
		t.Errorf("clear must not reset the id counter, got %d", task.ID)
	}
}

func TestUserAccounts(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	u, err := s.InsertUser(ctx, repository.InsertUserOptions{Username: "aman", Email: "aman@example.com"})
	if err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("expected user id 1, got %d", u.ID)
	}

	got, err := s.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Username != "aman" {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := s.GetUser(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestConcurrentInserts(t *testing.T) {
	s := New() // real clock; ties in createdAt are acceptable
	ctx := context.Background()

	const n = 50
	done := make(chan int64, n)
	for i := 0; i < n; i++ {
		go func() {
			task, err := s.InsertTask(ctx, repository.InsertTaskOptions{
				Description: "x", Assignee: "y", Deadline: "z",
			})
			if err != nil {
				t.Error(err)
			}
			done <- task.ID
		}()
	}

	seen := map[int64]bool{}
	for i := 0; i < n; i++ {
		id := <-done
		if seen[id] {
			t.Fatalf("duplicate id under concurrency: %d", id)
		}
		seen[id] = true
	}

	tasks, _ := s.GetAllTasks(ctx)
	if len(tasks) != n {
		t.Errorf("expected %d tasks, got %d", n, len(tasks))
	}
}
