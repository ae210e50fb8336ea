package task

import "meeting-task-converter/internal/model"

// ProcessTranscriptInput is the input for the text-entry pipeline.
type ProcessTranscriptInput struct {
	Transcript string
}

// ProcessAudioInput is the input for the media-entry pipeline.
type ProcessAudioInput struct {
	FileName string
	Data     []byte
}

// ProcessOutput reports what a pipeline instance persisted. Candidates
// dropped by validation are reflected only in a smaller Count.
type ProcessOutput struct {
	Tasks []model.Task
	Count int
}

// ProcessAudioOutput additionally carries the raw transcript.
type ProcessAudioOutput struct {
	ProcessOutput
	Transcript string
}

// UpdateInput describes a partial update. Nil fields are left untouched.
type UpdateInput struct {
	ID          int64
	Description *string
	Assignee    *string
	Deadline    *string
	Priority    *string
}

// Export is a rendered task-list document.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}
