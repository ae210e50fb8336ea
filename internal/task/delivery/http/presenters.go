package http

import (
	"fmt"
	"time"

	"meeting-task-converter/internal/model"
	"meeting-task-converter/internal/task"
)

// --- Request DTOs ---

type processTranscriptReq struct {
	Transcript string `json:"transcript"`
}

func (r processTranscriptReq) toInput() task.ProcessTranscriptInput {
	return task.ProcessTranscriptInput{Transcript: r.Transcript}
}

type updateReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Description *string `json:"description" binding:"omitempty,min=1"`
	Assignee    *string `json:"assignee"    binding:"omitempty,min=1"`
	Deadline    *string `json:"deadline"    binding:"omitempty,min=1"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=P1 P2 P3"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Description: r.Description,
		Assignee:    r.Assignee,
		Deadline:    r.Deadline,
		Priority:    r.Priority,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Assignee    string    `json:"assignee"`
	Deadline    string    `json:"deadline"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Description: t.Description,
		Assignee:    t.Assignee,
		Deadline:    t.Deadline,
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type processTranscriptResp struct {
	Message string     `json:"message"`
	Tasks   []taskResp `json:"tasks"`
}

func newProcessTranscriptResp(out task.ProcessOutput) processTranscriptResp {
	return processTranscriptResp{
		Message: processMessage(out.Count),
		Tasks:   newTaskListResp(out.Tasks),
	}
}

type processAudioResp struct {
	Transcript string     `json:"transcript"`
	Message    string     `json:"message"`
	Tasks      []taskResp `json:"tasks"`
}

func newProcessAudioResp(out task.ProcessAudioOutput) processAudioResp {
	return processAudioResp{
		Transcript: out.Transcript,
		Message:    processMessage(out.Count),
		Tasks:      newTaskListResp(out.Tasks),
	}
}

func processMessage(count int) string {
	if count == 1 {
		return "Successfully created 1 task"
	}
	return fmt.Sprintf("Successfully created %d tasks", count)
}
