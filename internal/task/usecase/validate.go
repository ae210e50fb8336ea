package usecase

import (
	"meeting-task-converter/internal/extract"
	"meeting-task-converter/internal/model"
	"meeting-task-converter/internal/task/repository"
)

// validateCandidate is the total function from an unvalidated candidate to
// insertable task fields. A candidate survives only if description, assignee
// and deadline are all non-empty; priority is normalized unconditionally.
func validateCandidate(c extract.Candidate) (repository.InsertTaskOptions, bool) {
	if c.Description == "" || c.Assignee == "" || c.Deadline == "" {
		return repository.InsertTaskOptions{}, false
	}

	return repository.InsertTaskOptions{
		Description: c.Description,
		Assignee:    c.Assignee,
		Deadline:    c.Deadline,
		Priority:    model.NormalizePriority(c.Priority),
	}, true
}
