package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// CreateTranscription sends a named audio payload to the speech-to-text
// endpoint and returns the transcript text. An empty transcript is a valid
// result, not an error.
func (c *Client) CreateTranscription(ctx context.Context, req TranscriptionRequest) (string, error) {
	if req.Model == "" {
		req.Model = c.transcriptionModel
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// Manual part header so the file part carries its real content type
	// instead of multipart's default application/octet-stream.
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(req.FileName)))
	header.Set("Content-Type", req.ContentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("openai: failed to create form part: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return "", fmt.Errorf("openai: failed to write audio payload: %w", err)
	}

	if err := w.WriteField("model", req.Model); err != nil {
		return "", fmt.Errorf("openai: failed to write model field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("openai: failed to finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result TranscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return result.Text, nil
}
