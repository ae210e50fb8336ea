package usecase

import (
	"meeting-task-converter/internal/task"
	"meeting-task-converter/internal/task/repository"
	"meeting-task-converter/pkg/log"
)

type implUseCase struct {
	l           log.Logger
	extractor   task.Extractor
	transcriber task.Transcriber
	normalizer  task.Normalizer
	repo        repository.Repository
}

// New creates a new task UseCase instance.
func New(
	l log.Logger,
	extractor task.Extractor,
	transcriber task.Transcriber,
	normalizer task.Normalizer,
	repo repository.Repository,
) *implUseCase {
	return &implUseCase{
		l:           l,
		extractor:   extractor,
		transcriber: transcriber,
		normalizer:  normalizer,
		repo:        repo,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
