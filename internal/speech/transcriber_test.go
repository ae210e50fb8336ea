package speech_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meeting-task-converter/internal/speech"
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

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.mp3":     "audio/mpeg",
		"a.WAV":     "audio/wav",
		"a.m4a":     "audio/m4a",
		"a.unknown": "audio/mpeg",
		"a":         "audio/mpeg",
	}
	for name, want := range cases {
		if got := speech.ContentTypeFor(name); got != want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestTranscribe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"text":"Rajiv, take care of client follow-up by Wednesday."}`))
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		tr := speech.New(&mockLogger{}, client)
		text, err := tr.Transcribe(context.Background(), []byte("audio"), "call.mp3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(text, "Rajiv") {
			t.Errorf("unexpected transcript: %q", text)
		}
	})

	t.Run("Empty transcript is not an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"text":"   "}`))
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		tr := speech.New(&mockLogger{}, client)
		text, err := tr.Transcribe(context.Background(), []byte("audio"), "silence.wav")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(text) != "" {
			t.Errorf("expected whitespace-only transcript, got %q", text)
		}
	})

	t.Run("Upstream failure wraps sentinel", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Unsupported file format"}}`))
		}))
		defer ts.Close()

		client := openai.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		tr := speech.New(&mockLogger{}, client)
		_, err := tr.Transcribe(context.Background(), []byte("audio"), "bad.mp3")
		if !errors.Is(err, speech.ErrTranscriptionFailed) {
			t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
		}
		if !strings.Contains(err.Error(), "Unsupported file format") {
			t.Errorf("upstream message must be preserved: %v", err)
		}
	})
}
