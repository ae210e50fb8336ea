package usecase

import (
	"context"
	"fmt"
	"strings"

	"meeting-task-converter/internal/model"
	"meeting-task-converter/internal/task"
)

// ProcessTranscript runs the text-entry pipeline:
// extraction → validation → persistence.
func (uc *implUseCase) ProcessTranscript(ctx context.Context, input task.ProcessTranscriptInput) (task.ProcessOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return task.ProcessOutput{}, task.ErrEmptyTranscript
	}

	uc.l.Infof(ctx, "pipeline: text entry, transcript_length=%d", len(input.Transcript))

	return uc.extractAndPersist(ctx, input.Transcript)
}

// ProcessAudio runs the media-entry pipeline:
// normalization → transcription → extraction → validation → persistence.
func (uc *implUseCase) ProcessAudio(ctx context.Context, input task.ProcessAudioInput) (task.ProcessAudioOutput, error) {
	uc.l.Infof(ctx, "pipeline: media entry, file=%s size=%d", input.FileName, len(input.Data))

	audio, err := uc.normalizer.Normalize(ctx, input.Data, input.FileName)
	if err != nil {
		return task.ProcessAudioOutput{}, fmt.Errorf("normalize media: %w", err)
	}

	transcript, err := uc.transcriber.Transcribe(ctx, audio.Data, audio.FileName)
	if err != nil {
		return task.ProcessAudioOutput{}, fmt.Errorf("transcribe audio: %w", err)
	}

	if strings.TrimSpace(transcript) == "" {
		return task.ProcessAudioOutput{}, task.ErrNoSpeech
	}

	out, err := uc.extractAndPersist(ctx, transcript)
	if err != nil {
		return task.ProcessAudioOutput{}, err
	}

	return task.ProcessAudioOutput{ProcessOutput: out, Transcript: transcript}, nil
}

// extractAndPersist is the shared tail of both pipeline variants. Candidates
// failing validation are silently dropped; a failure inserting one candidate
// does not roll back candidates already persisted in the same batch.
func (uc *implUseCase) extractAndPersist(ctx context.Context, transcript string) (task.ProcessOutput, error) {
	candidates, err := uc.extractor.ExtractTasks(ctx, transcript)
	if err != nil {
		return task.ProcessOutput{}, fmt.Errorf("extract tasks: %w", err)
	}

	uc.l.Infof(ctx, "pipeline: %d candidates extracted", len(candidates))

	persisted := make([]model.Task, 0, len(candidates))
	for _, c := range candidates {
		opt, ok := validateCandidate(c)
		if !ok {
			uc.l.Warnf(ctx, "pipeline: dropping invalid candidate %+v", c)
			continue
		}

		t, insErr := uc.repo.InsertTask(ctx, opt)
		if insErr != nil {
			uc.l.Errorf(ctx, "pipeline: failed to persist candidate %q: %v", opt.Description, insErr)
			continue
		}
		persisted = append(persisted, t)
	}

	uc.l.Infof(ctx, "pipeline: persisted %d of %d candidates", len(persisted), len(candidates))

	return task.ProcessOutput{Tasks: persisted, Count: len(persisted)}, nil
}
