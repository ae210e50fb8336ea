package task

import (
	"context"

	"meeting-task-converter/internal/extract"
	"meeting-task-converter/internal/media"
	"meeting-task-converter/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ProcessTranscript runs the text-entry pipeline:
	// extraction → validation → persistence.
	ProcessTranscript(ctx context.Context, input ProcessTranscriptInput) (ProcessOutput, error)

	// ProcessAudio runs the media-entry pipeline:
	// normalization → transcription → extraction → validation → persistence.
	ProcessAudio(ctx context.Context, input ProcessAudioInput) (ProcessAudioOutput, error)

	// List returns all tasks, newest first.
	List(ctx context.Context) ([]model.Task, error)

	// Update merges the provided fields into an existing task.
	Update(ctx context.Context, input UpdateInput) (model.Task, error)

	// Delete removes a single task.
	Delete(ctx context.Context, id int64) error

	// Clear removes all tasks unconditionally.
	Clear(ctx context.Context) error

	// ExportCSV renders the current task list as CSV.
	ExportCSV(ctx context.Context) (Export, error)

	// ExportXLSX renders the current task list as an Excel workbook.
	ExportXLSX(ctx context.Context) (Export, error)
}

// Extractor produces raw candidate items from a transcript.
type Extractor interface {
	ExtractTasks(ctx context.Context, transcript string) ([]extract.Candidate, error)
}

// Transcriber converts a normalized audio payload to plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, data []byte, filename string) (string, error)
}

// Normalizer produces a transcribable audio payload from an upload.
type Normalizer interface {
	Normalize(ctx context.Context, data []byte, filename string) (media.Audio, error)
}
