package extract

// Candidate is an unvalidated task-shaped item produced by the upstream
// model, before any field-presence checks. Every field is already coerced
// to a string; missing description/assignee/deadline become "" and a
// missing priority becomes the default. Validation into a Task is the
// orchestrator's responsibility, not this package's.
type Candidate struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
}
