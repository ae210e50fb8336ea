package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-task-converter/internal/task"
)

// processTranscriptReq binds and validates the transcript request body.
func (h *handler) processTranscriptReq(c *gin.Context) (processTranscriptReq, error) {
	var req processTranscriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return req, errors.New("transcript is required")
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	id, err := taskIDParam(c)
	if err != nil {
		return updateReq{}, errors.New("Invalid task id")
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id

	if req.Description == nil && req.Assignee == nil && req.Deadline == nil && req.Priority == nil {
		return req, task.ErrInvalidUpdate
	}
	return req, nil
}

// taskIDParam parses the :id path parameter as a positive integer.
func taskIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
