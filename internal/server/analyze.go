package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfuginay/courseforge-ai/internal/coursegen"
	"github.com/jfuginay/courseforge-ai/internal/logger"
)

// AnalyzeHandler serves the stateless generation endpoint: URL in,
// course JSON out, nothing persisted.
type AnalyzeHandler struct {
	gen coursegen.Generator
	log *logger.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(gen coursegen.Generator, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{gen: gen, log: log}
}

type analyzeRequest struct {
	YouTubeURL string `json:"youtubeUrl"`
}

// POST /api/analyze-video
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if req.YouTubeURL == "" {
		RespondError(c, http.StatusBadRequest, "YouTube URL is required", "")
		return
	}

	data, err := h.gen.Generate(c.Request.Context(), req.YouTubeURL)
	if err != nil {
		var invalid *coursegen.ErrInvalidURL
		if errors.As(err, &invalid) {
			RespondError(c, http.StatusBadRequest, "Invalid YouTube URL format", "")
			return
		}

		// Upstream failure: log the detail, return a generic message.
		h.log.Error("video analysis failed", "url", req.YouTubeURL, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to analyze video",
			"The video could not be processed. Please try again later.")
		return
	}

	RespondOK(c, gin.H{
		"success": true,
		"data":    data,
	})
}
