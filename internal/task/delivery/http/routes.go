package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The processing routes additionally run the given middleware
// (rate limiting) because each call bills an upstream AI request.
func RegisterRoutes(r *gin.Engine, h Handler, processMW ...gin.HandlerFunc) {
	r.GET("/tasks", h.List)
	r.GET("/tasks/export", h.Export)
	r.PUT("/tasks/:id", h.Update)
	r.DELETE("/tasks/:id", h.Delete)
	r.DELETE("/tasks", h.Clear)

	process := r.Group("")
	process.Use(processMW...)
	{
		process.POST("/process-transcript", h.ProcessTranscript)
		process.POST("/process-audio", h.ProcessAudio)
	}
}
