package usecase_test

import (
	"context"
	"errors"

	"meeting-task-converter/internal/extract"
	"meeting-task-converter/internal/media"
)

// mock logger

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

// fake extraction client

type fakeExtractor struct {
	candidates []extract.Candidate
	err        error
	calls      int
	lastInput  string
}

func (f *fakeExtractor) ExtractTasks(ctx context.Context, transcript string) ([]extract.Candidate, error) {
	f.calls++
	f.lastInput = transcript
	return f.candidates, f.err
}

// fake transcription client

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, data []byte, filename string) (string, error) {
	return f.transcript, f.err
}

// fake media normalizer

type fakeNormalizer struct {
	err error
}

func (f *fakeNormalizer) Normalize(ctx context.Context, data []byte, filename string) (media.Audio, error) {
	if f.err != nil {
		return media.Audio{}, f.err
	}
	return media.Audio{Data: data, FileName: filename}, nil
}

var errUpstreamDown = errors.New("upstream down")
