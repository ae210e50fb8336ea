package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrNoSpeech        = errors.New("no speech detected")
	ErrNotFound        = errors.New("task not found")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidUpdate   = errors.New("no valid fields to update")
)
