package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meeting-task-converter/internal/extract"
	"meeting-task-converter/internal/media"
	"meeting-task-converter/internal/speech"
	"meeting-task-converter/internal/task"
	"meeting-task-converter/pkg/response"
)

// respondError classifies pipeline and domain failures into user-facing
// statuses. Upstream AI failures become a generic 502; everything caused by
// the input itself stays a 400.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyTranscript):
		response.BadRequest(c, "Transcript is required")
	case errors.Is(err, task.ErrNoSpeech):
		response.BadRequest(c, "No speech detected in the audio. Please try a clearer or smaller file.")
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, "Task not found")
	case errors.Is(err, task.ErrInvalidPriority):
		response.BadRequest(c, "Priority must be one of P1, P2, P3")
	case errors.Is(err, media.ErrUnsupportedType):
		response.BadRequest(c, "Invalid file type")
	case errors.Is(err, media.ErrConversionFailed):
		response.BadRequest(c, "Could not process the audio track. Please try a clearer or smaller file.")
	case errors.Is(err, extract.ErrMalformedPayload):
		response.BadRequest(c, "Could not parse the AI response. Please try again.")
	case errors.Is(err, extract.ErrExtractionFailed),
		errors.Is(err, speech.ErrTranscriptionFailed):
		response.BadGateway(c, "AI service unavailable")
	default:
		response.InternalError(c)
	}
}
