package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-converter/internal/task"
	"meeting-task-converter/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	ProcessTranscript(c *gin.Context)
	ProcessAudio(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Clear(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
