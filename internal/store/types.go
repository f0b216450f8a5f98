package store

import "time"

// Course is the persisted course record.
type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	YouTubeURL  string         `json:"youtubeUrl"`
	VideoID     string         `json:"videoId"`
	Duration    int            `json:"duration"` // seconds
	Metadata    CourseMetadata `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CourseMetadata carries descriptive attributes that don't affect playback.
type CourseMetadata struct {
	Language   string   `json:"language"`
	Topics     []string `json:"topics"`
	Difficulty string   `json:"difficulty"`
}

// Question is the persisted, flattened question record. Unlike the
// in-course representation it carries its own timestamp so playback can
// trigger it without walking segments.
type Question struct {
	ID            string   `json:"id"`
	CourseID      string   `json:"courseId"`
	Type          string   `json:"type"`
	Timestamp     int      `json:"timestamp"` // seconds into the video
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Order         int      `json:"order"`
}

// UserProgress is one viewing session's progress record.
type UserProgress struct {
	ID                 string            `json:"id"`
	CourseID           string            `json:"courseId"`
	SessionID          string            `json:"sessionId"`
	CurrentTimestamp   int               `json:"currentTimestamp"`
	CompletedQuestions []string          `json:"completedQuestions"`
	Attempts           []QuestionAttempt `json:"attempts"`
	Score              int               `json:"score"`
	StartedAt          time.Time         `json:"startedAt"`
	LastAccessedAt     time.Time         `json:"lastAccessedAt"`
}

// QuestionAttempt is one recorded answer submission.
type QuestionAttempt struct {
	QuestionID  string    `json:"questionId"`
	Answer      int       `json:"answer"`
	Correct     bool      `json:"isCorrect"`
	AttemptedAt time.Time `json:"attemptedAt"`
	TimeSpent   int       `json:"timeSpent"` // seconds
}

// GenerationEvent captures one call to the text-generation service.
type GenerationEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}
