package extract_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"meeting-task-converter/internal/extract"
	"meeting-task-converter/pkg/openai"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// upstream builds an httptest server returning the given chat content.
func upstream(t *testing.T, content string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		body := openai.ChatCompletionResponse{
			Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: content}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
}

func newExtractor(t *testing.T, ts *httptest.Server) *extract.Extractor {
	t.Helper()
	client := openai.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	e, err := extract.New(&mockLogger{}, client)
	if err != nil {
		t.Fatalf("extract.New: %v", err)
	}
	return e
}

func TestExtractTasksObjectShape(t *testing.T) {
	ts := upstream(t, `{"tasks":[
		{"description":"Finish landing page","assignee":"Aman","deadline":"10pm tomorrow","priority":"P3"},
		{"description":"Client follow-up","assignee":"Rajiv","deadline":"Wednesday","priority":"P1"}
	]}`, nil)
	defer ts.Close()

	e := newExtractor(t, ts)
	got, err := e.ExtractTasks(context.Background(), "Aman, take the landing page by 10pm tomorrow.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Assignee != "Aman" || got[0].Deadline != "10pm tomorrow" {
		t.Errorf("unexpected first candidate: %+v", got[0])
	}
	if got[1].Priority != "P1" {
		t.Errorf("explicit priority must be preserved: %+v", got[1])
	}
}

func TestExtractTasksBareListShape(t *testing.T) {
	ts := upstream(t, `[{"description":"Send minutes","assignee":"Lee","deadline":"no deadline specified"}]`, nil)
	defer ts.Close()

	e := newExtractor(t, ts)
	got, err := e.ExtractTasks(context.Background(), "Lee will send the minutes.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Priority != "P3" {
		t.Errorf("missing priority must default to P3, got %q", got[0].Priority)
	}
}

func TestExtractTasksCoercion(t *testing.T) {
	// Non-string fields and missing keys are coerced, never rejected.
	ts := upstream(t, `{"tasks":[{"description":42,"deadline":null}]}`, nil)
	defer ts.Close()

	e := newExtractor(t, ts)
	got, err := e.ExtractTasks(context.Background(), "odd payload")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Description != "42" {
		t.Errorf("numeric description must coerce to string, got %q", got[0].Description)
	}
	if got[0].Assignee != "" || got[0].Deadline != "" {
		t.Errorf("missing fields must coerce to empty string: %+v", got[0])
	}
}

func TestExtractTasksCodeFences(t *testing.T) {
	ts := upstream(t, "```json\n{\"tasks\":[{\"description\":\"x\",\"assignee\":\"y\",\"deadline\":\"z\",\"priority\":\"P2\"}]}\n```", nil)
	defer ts.Close()

	e := newExtractor(t, ts)
	got, err := e.ExtractTasks(context.Background(), "fenced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Priority != "P2" {
		t.Errorf("unexpected candidates: %+v", got)
	}
}

func TestExtractTasksMalformedPayload(t *testing.T) {
	cases := map[string]string{
		"not json":            "this is not json",
		"object without list": `{"items":[]}`,
		"scalar":              `42`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			ts := upstream(t, content, nil)
			defer ts.Close()

			e := newExtractor(t, ts)
			_, err := e.ExtractTasks(context.Background(), "transcript "+name)
			if !errors.Is(err, extract.ErrMalformedPayload) {
				t.Fatalf("expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestExtractTasksUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer ts.Close()

	e := newExtractor(t, ts)
	_, err := e.ExtractTasks(context.Background(), "anything")
	if !errors.Is(err, extract.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestExtractTasksCacheHit(t *testing.T) {
	var calls atomic.Int64
	ts := upstream(t, `{"tasks":[{"description":"x","assignee":"y","deadline":"z","priority":"P3"}]}`, &calls)
	defer ts.Close()

	e := newExtractor(t, ts)

	for i := 0; i < 3; i++ {
		got, err := e.ExtractTasks(context.Background(), "same transcript")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
	}

	if calls.Load() != 1 {
		t.Errorf("identical transcript must hit the cache, got %d upstream calls", calls.Load())
	}
}
