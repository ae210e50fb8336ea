package openai

import "time"

const (
	// DefaultChatModel is the default chat completion model.
	DefaultChatModel = "gpt-4o-mini"

	// DefaultTranscriptionModel is the default speech-to-text model.
	DefaultTranscriptionModel = "whisper-1"

	// DefaultAPIURL is the default OpenAI API endpoint.
	DefaultAPIURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds every upstream call so a stuck pipeline
	// instance eventually fails instead of waiting forever.
	DefaultTimeout = 120 * time.Second
)
