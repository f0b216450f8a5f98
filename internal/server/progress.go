package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfuginay/courseforge-ai/internal/logger"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

// ProgressHandler serves the viewing-session progress protocol.
type ProgressHandler struct {
	progress store.ProgressRepo
	log      *logger.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(progress store.ProgressRepo, log *logger.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, log: log}
}

type attemptPayload struct {
	QuestionID string `json:"questionId"`
	Answer     int    `json:"answer"`
	IsCorrect  bool   `json:"isCorrect"`
	TimeSpent  int    `json:"timeSpent"`
}

type progressRequest struct {
	CourseID         string          `json:"courseId"`
	SessionID        string          `json:"sessionId"`
	CurrentTimestamp *int            `json:"currentTimestamp"`
	QuestionAttempt  *attemptPayload `json:"questionAttempt"`
}

// POST /api/progress
//
// Creates the progress record on first contact (generating a session id
// when the client has none), then applies either a position update or a
// question attempt.
func (h *ProgressHandler) Update(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if req.CourseID == "" {
		RespondError(c, http.StatusBadRequest, "Course ID is required", "")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = store.NewSessionID()
	}

	ctx := c.Request.Context()
	p, err := h.progress.GetProgress(ctx, req.CourseID, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		p = &store.UserProgress{
			CourseID:           req.CourseID,
			SessionID:          sessionID,
			CompletedQuestions: []string{},
			Attempts:           []store.QuestionAttempt{},
		}
		if req.CurrentTimestamp != nil {
			p.CurrentTimestamp = *req.CurrentTimestamp
		}
		if createErr := h.progress.CreateProgress(ctx, p); createErr != nil {
			// Two first requests for the same session can race past the
			// lookup above; the loser finds the winner's record on a
			// second read.
			p, err = h.progress.GetProgress(ctx, req.CourseID, sessionID)
			if err != nil {
				h.log.Error("create progress failed", "course_id", req.CourseID, "error", createErr)
				RespondError(c, http.StatusInternalServerError, "Failed to update progress", "")
				return
			}
		}
	} else if err != nil {
		h.log.Error("fetch progress failed", "course_id", req.CourseID, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to update progress", "")
		return
	}

	switch {
	case req.QuestionAttempt != nil:
		p, err = h.progress.AddAttempt(ctx, req.CourseID, sessionID, store.QuestionAttempt{
			QuestionID: req.QuestionAttempt.QuestionID,
			Answer:     req.QuestionAttempt.Answer,
			Correct:    req.QuestionAttempt.IsCorrect,
			TimeSpent:  req.QuestionAttempt.TimeSpent,
		})
	default:
		if req.CurrentTimestamp != nil {
			p.CurrentTimestamp = *req.CurrentTimestamp
		}
		err = h.progress.UpdateProgress(ctx, p)
	}
	if err != nil {
		h.log.Error("update progress failed", "course_id", req.CourseID, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to update progress", "")
		return
	}

	RespondOK(c, gin.H{"progress": p})
}

// GET /api/progress?courseId=&sessionId=
func (h *ProgressHandler) Get(c *gin.Context) {
	courseID := c.Query("courseId")
	sessionID := c.Query("sessionId")
	if courseID == "" || sessionID == "" {
		RespondError(c, http.StatusBadRequest, "Course ID and session ID are required", "")
		return
	}

	p, err := h.progress.GetProgress(c.Request.Context(), courseID, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		RespondError(c, http.StatusNotFound, "Progress not found", "")
		return
	}
	if err != nil {
		h.log.Error("fetch progress failed", "course_id", courseID, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch progress", "")
		return
	}

	RespondOK(c, gin.H{"progress": p})
}
