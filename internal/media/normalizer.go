package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"meeting-task-converter/pkg/executor"
	"meeting-task-converter/pkg/log"
)

// Normalizer turns an uploaded audio or video payload into an audio payload
// suitable for transcription. Video inputs are demuxed and re-encoded to mp3
// via ffmpeg; audio inputs pass through unchanged.
type Normalizer struct {
	l    log.Logger
	exec executor.Executor
}

// New creates a new media Normalizer.
func New(l log.Logger, exec executor.Executor) *Normalizer {
	return &Normalizer{l: l, exec: exec}
}

// Audio is a normalized audio payload.
type Audio struct {
	Data     []byte
	FileName string
}

// Normalize produces a decodable audio payload for the given upload.
// All scratch files are removed on every exit path.
func (n *Normalizer) Normalize(ctx context.Context, data []byte, filename string) (Audio, error) {
	switch {
	case IsAudio(filename):
		return Audio{Data: data, FileName: filename}, nil
	case IsVideo(filename):
		return n.extractAudio(ctx, data, filename)
	default:
		return Audio{}, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
}

// extractAudio writes the video to scratch storage, runs ffmpeg to demux and
// re-encode the audio track (mp3, 128 kbps, 44.1 kHz), and reads it back.
func (n *Normalizer) extractAudio(ctx context.Context, data []byte, filename string) (Audio, error) {
	scratch, err := os.MkdirTemp("", "media-normalize-*")
	if err != nil {
		return Audio{}, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	videoPath := filepath.Join(scratch, "input"+normalizeExt(filename))
	if err := os.WriteFile(videoPath, data, 0o600); err != nil {
		return Audio{}, fmt.Errorf("write scratch video: %w", err)
	}

	audioPath := filepath.Join(scratch, "output.mp3")

	n.l.Infof(ctx, "media: extracting audio track from %s (%d bytes)", filename, len(data))

	// -vn drops the video stream; mp3 at 128k/44.1kHz is widely accepted
	// by speech-to-text services.
	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-ab", "128k",
		"-ar", "44100",
		"-y",
		audioPath,
	}

	if _, err := n.exec.Execute(ctx, "ffmpeg", args...); err != nil {
		return Audio{}, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return Audio{}, fmt.Errorf("read scratch audio: %w", err)
	}

	outName := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) + ".mp3"
	n.l.Infof(ctx, "media: extracted %d bytes of audio as %s", len(audio), outName)

	return Audio{Data: audio, FileName: outName}, nil
}
