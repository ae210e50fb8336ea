package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"meeting-task-converter/internal/model"
	"meeting-task-converter/pkg/log"
	"meeting-task-converter/pkg/openai"
)

// cacheSize bounds the extraction response cache. Identical transcripts
// resubmitted within a process lifetime skip the upstream call.
const cacheSize = 128

// Extractor sends transcripts to the upstream language model and returns
// raw candidate items.
type Extractor struct {
	l      log.Logger
	client *openai.Client
	cache  *lru.Cache[string, []Candidate]
}

// New creates a new Extractor.
func New(l log.Logger, client *openai.Client) (*Extractor, error) {
	cache, err := lru.New[string, []Candidate](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("extract: init cache: %w", err)
	}
	return &Extractor{l: l, client: client, cache: cache}, nil
}

// ExtractTasks returns the raw candidate list for the transcript. It does
// not filter or validate items.
func (e *Extractor) ExtractTasks(ctx context.Context, transcript string) ([]Candidate, error) {
	key := cacheKey(transcript)
	if cached, ok := e.cache.Get(key); ok {
		e.l.Infof(ctx, "extract: cache hit, %d candidates", len(cached))
		return cached, nil
	}

	resp, err := e.client.CreateChatCompletion(ctx, extractionRequest(transcript))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response from model", ErrExtractionFailed)
	}

	candidates, err := parseCandidates(resp.Choices[0].Message.Content)
	if err != nil {
		e.l.Errorf(ctx, "extract: unparseable model payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	e.l.Infof(ctx, "extract: model returned %d candidates", len(candidates))
	e.cache.Add(key, candidates)
	return candidates, nil
}

// parseCandidates accepts either an object holding the list under "tasks"
// or a bare list, and coerces every item field to a string.
func parseCandidates(content string) ([]Candidate, error) {
	cleaned := stripCodeFences(content)

	var payload any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %v", err)
	}

	var items []any
	switch v := payload.(type) {
	case []any:
		items = v
	case map[string]any:
		list, ok := v["tasks"].([]any)
		if !ok {
			return nil, fmt.Errorf("object payload has no task list")
		}
		items = list
	default:
		return nil, fmt.Errorf("payload is neither an object nor a list")
	}

	candidates := make([]Candidate, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)
		c := Candidate{
			Description: coerceString(fields["description"]),
			Assignee:    coerceString(fields["assignee"]),
			Deadline:    coerceString(fields["deadline"]),
			Priority:    coerceString(fields["priority"]),
		}
		if c.Priority == "" {
			c.Priority = string(model.DefaultPriority)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// coerceString turns an arbitrary JSON value into a string; nil becomes "".
func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// stripCodeFences removes markdown fences models sometimes wrap around JSON.
func stripCodeFences(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

func cacheKey(transcript string) string {
	sum := sha256.Sum256([]byte(transcript))
	return hex.EncodeToString(sum[:])
}
