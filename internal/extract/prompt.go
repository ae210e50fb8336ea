package extract

import "meeting-task-converter/pkg/openai"

// TaskExtractionSystemPrompt is the fixed instruction sent to the model.
const TaskExtractionSystemPrompt = `You are a task extraction assistant. Your job is to extract action items from meeting transcripts.

RULES:
1. Identify every discrete action item in the transcript.
2. For each action item, capture:
   - description: what must be done
   - assignee: the name of the person responsible
   - deadline: the EXACT deadline phrasing from the transcript, verbatim. If no deadline is stated, use exactly "no deadline specified".
   - priority: "P3" unless the transcript explicitly states "P1" or "P2"
3. Do not invent tasks, assignees, or deadlines that are not in the transcript.
4. Return a JSON object with a single key "tasks" holding the list of action items.`

// extractionTemperature keeps model output as repeatable as possible.
const extractionTemperature = 0.2

// taskListSchema is the required structured-output schema: an object with a
// "tasks" list of items whose fields are all strings.
var taskListSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"tasks": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"description": map[string]any{"type": "string"},
					"assignee":    map[string]any{"type": "string"},
					"deadline":    map[string]any{"type": "string"},
					"priority":    map[string]any{"type": "string", "enum": []string{"P1", "P2", "P3"}},
				},
				"required":             []string{"description", "assignee", "deadline", "priority"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"tasks"},
	"additionalProperties": false,
}

func extractionRequest(transcript string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Messages: []openai.Message{
			{Role: "system", Content: TaskExtractionSystemPrompt},
			{Role: "user", Content: transcript},
		},
		Temperature: extractionTemperature,
		ResponseFormat: &openai.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &openai.JSONSchema{
				Name:   "task_list",
				Strict: true,
				Schema: taskListSchema,
			},
		},
	}
}
