package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfuginay/courseforge-ai/internal/course"
	"github.com/jfuginay/courseforge-ai/internal/coursegen"
	"github.com/jfuginay/courseforge-ai/internal/logger"
	"github.com/jfuginay/courseforge-ai/internal/player"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

// CourseHandler serves the persisting course endpoints: generation plus
// course/question storage.
type CourseHandler struct {
	gen     coursegen.Generator
	courses store.CourseRepo
	log     *logger.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(gen coursegen.Generator, courses store.CourseRepo, log *logger.Logger) *CourseHandler {
	return &CourseHandler{gen: gen, courses: courses, log: log}
}

type createCourseRequest struct {
	YouTubeURL string `json:"youtubeUrl"`
}

// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
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
		h.log.Error("course creation failed", "url", req.YouTubeURL, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to create course", "")
		return
	}

	videoID, _ := coursegen.ExtractVideoID(req.YouTubeURL)

	rec := &store.Course{
		Title:       data.Title,
		Description: data.Description,
		YouTubeURL:  req.YouTubeURL,
		VideoID:     videoID,
		Duration:    course.ParseDurationEstimate(data.Duration),
		Metadata: store.CourseMetadata{
			Language:   "en",
			Topics:     collectTopics(data),
			Difficulty: "beginner",
		},
	}
	ctx := c.Request.Context()
	if err := h.courses.CreateCourse(ctx, rec); err != nil {
		h.log.Error("persist course failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to create course", "")
		return
	}

	questions, err := h.courses.CreateQuestions(ctx, rec.ID, flattenQuestions(data))
	if err != nil {
		h.log.Error("persist questions failed", "course_id", rec.ID, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to create course", "")
		return
	}

	RespondOK(c, gin.H{
		"course":    rec,
		"questions": questions,
		"segments":  data.Segments,
	})
}

// GET /api/courses?id=
func (h *CourseHandler) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		list, err := h.courses.ListCourses(c.Request.Context())
		if err != nil {
			h.log.Error("list courses failed", "error", err)
			RespondError(c, http.StatusInternalServerError, "Failed to fetch courses", "")
			return
		}
		RespondOK(c, gin.H{"courses": list})
		return
	}

	ctx := c.Request.Context()
	rec, err := h.courses.GetCourse(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		RespondError(c, http.StatusNotFound, "Course not found", "")
		return
	}
	if err != nil {
		h.log.Error("fetch course failed", "course_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch course", "")
		return
	}

	questions, err := h.courses.GetQuestions(ctx, id)
	if err != nil {
		h.log.Error("fetch questions failed", "course_id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch course", "")
		return
	}

	RespondOK(c, gin.H{
		"course":    rec,
		"questions": questions,
	})
}

// flattenQuestions converts a generated course into per-question
// records, each carrying its segment's timestamp.
func flattenQuestions(data *course.Course) []store.Question {
	flat := player.QuestionsFromCourse(data)
	out := make([]store.Question, len(flat))
	for i, q := range flat {
		out[i] = store.Question{
			Type:          string(course.TypeMultipleChoice),
			Timestamp:     q.Timestamp,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.Correct,
			Explanation:   q.Explanation,
		}
	}
	return out
}

// collectTopics gathers segment concepts into course-level topics,
// deduplicated, capped at ten.
func collectTopics(data *course.Course) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, seg := range data.Segments {
		for _, concept := range seg.Concepts {
			if seen[concept] || len(topics) >= 10 {
				continue
			}
			seen[concept] = true
			topics = append(topics, concept)
		}
	}
	return topics
}
