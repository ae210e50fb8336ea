package speech

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"meeting-task-converter/pkg/log"
	"meeting-task-converter/pkg/openai"
)

// contentTypes maps recognized audio extensions to content-type labels.
// Anything else falls back to a generic audio type.
var contentTypes = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".m4a": "audio/m4a",
}

const genericAudioType = "audio/mpeg"

// Transcriber sends normalized audio payloads to the upstream
// speech-to-text service.
type Transcriber struct {
	l      log.Logger
	client *openai.Client
}

// New creates a new Transcriber.
func New(l log.Logger, client *openai.Client) *Transcriber {
	return &Transcriber{l: l, client: client}
}

// Transcribe returns the transcript for the given audio payload. An empty or
// whitespace-only transcript is a valid result; callers decide whether that
// is acceptable.
func (t *Transcriber) Transcribe(ctx context.Context, data []byte, filename string) (string, error) {
	t.l.Infof(ctx, "speech: transcribing %s (%d bytes)", filename, len(data))

	text, err := t.client.CreateTranscription(ctx, openai.TranscriptionRequest{
		FileName:    filename,
		ContentType: ContentTypeFor(filename),
		Data:        data,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}

	t.l.Infof(ctx, "speech: transcript length %d", len(text))
	return text, nil
}

// ContentTypeFor infers the content type from the filename extension.
func ContentTypeFor(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return genericAudioType
}
