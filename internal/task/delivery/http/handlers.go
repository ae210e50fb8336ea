package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"meeting-task-converter/internal/media"
	"meeting-task-converter/internal/task"
	"meeting-task-converter/pkg/response"
)

// maxUploadBytes bounds uploads at the transport layer.
const maxUploadBytes = 100 << 20 // 100MB

// List godoc
// @Summary     List tasks
// @Description Returns all tasks, most recently created first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {array}  taskResp
// @Failure     500 {object} response.ErrResp
// @Router      /tasks [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// ProcessTranscript godoc
// @Summary     Extract tasks from a typed transcript
// @Description Sends the transcript to the language model, validates the
// @Description extracted items and persists the valid ones.
// @Tags        Processing
// @Accept      json
// @Produce     json
// @Param       body body processTranscriptReq true "Meeting transcript"
// @Success     200 {object} processTranscriptResp
// @Failure     400 {object} response.ErrResp "Empty transcript or unparseable AI payload"
// @Failure     502 {object} response.ErrResp "Upstream AI failure"
// @Router      /process-transcript [post]
func (h *handler) ProcessTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.BadRequest(c, "Transcript is required")
		return
	}

	out, err := h.uc.ProcessTranscript(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTranscript: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProcessTranscriptResp(out))
}

// ProcessAudio godoc
// @Summary     Extract tasks from an audio or video recording
// @Description Normalizes the upload (video gets its audio track extracted),
// @Description transcribes it, then runs the same extraction pipeline as the
// @Description transcript endpoint.
// @Tags        Processing
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio or video file (max 100MB)"
// @Success     200 {object} processAudioResp
// @Failure     400 {object} response.ErrResp "Missing file, invalid type or no speech"
// @Failure     502 {object} response.ErrResp "Upstream AI failure"
// @Router      /process-audio [post]
func (h *handler) ProcessAudio(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := c.FormFile("audio")
	if err != nil {
		response.BadRequest(c, "No audio file provided")
		return
	}
	if file.Size > maxUploadBytes {
		response.BadRequest(c, fmt.Sprintf("File too large (max %dMB)", maxUploadBytes>>20))
		return
	}
	if !media.IsRecognized(file.Filename) {
		response.BadRequest(c, "Invalid file type")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.l.Errorf(ctx, "open upload: %v", err)
		response.InternalError(c)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		h.l.Errorf(ctx, "read upload: %v", err)
		response.InternalError(c)
		return
	}

	out, err := h.uc.ProcessAudio(ctx, task.ProcessAudioInput{FileName: file.Filename, Data: data})
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessAudio: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newProcessAudioResp(out))
}

// Update godoc
// @Summary     Update a task
// @Description Merges the provided fields into an existing task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task id"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.ErrResp "Invalid id or priority"
// @Failure     404 {object} response.ErrResp
// @Router      /tasks/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task id"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrResp "Invalid id"
// @Failure     404 {object} response.ErrResp
// @Router      /tasks/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, response.MessageResp{Message: "Task deleted successfully"})
}

// Clear godoc
// @Summary     Delete all tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.MessageResp
// @Failure     500 {object} response.ErrResp
// @Router      /tasks [delete]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, response.MessageResp{Message: "All tasks deleted"})
}

// Export godoc
// @Summary     Export the task list
// @Description Streams the current task list as a CSV or Excel download.
// @Tags        Tasks
// @Produce     text/csv
// @Param       format query string false "csv (default) or xlsx"
// @Success     200 {file} file
// @Failure     400 {object} response.ErrResp "Unknown format"
// @Router      /tasks/export [get]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		export task.Export
		err    error
	)
	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		export, err = h.uc.ExportCSV(ctx)
	case "xlsx":
		export, err = h.uc.ExportXLSX(ctx)
	default:
		response.BadRequest(c, "Unknown export format: "+format)
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Data(200, export.ContentType, export.Data)
}
