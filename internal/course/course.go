// Package course defines the interactive course domain model: a course is an
// ordered list of video segments, each carrying key concepts and timestamped
// multiple-choice questions.
package course

// QuestionType identifies how a question is answered.
type QuestionType string

const (
	// TypeMultipleChoice is the only question type currently generated:
	// the viewer picks one of four options.
	TypeMultipleChoice QuestionType = "multiple_choice"
)

// OptionCount is the number of answer options every multiple-choice
// question must carry.
const OptionCount = 4

// Question is a single quiz question anchored to a segment.
type Question struct {
	// Type is the question kind. Always TypeMultipleChoice today.
	Type QuestionType `json:"type"`

	// Prompt is the question text shown to the viewer.
	Prompt string `json:"question"`

	// Options holds exactly OptionCount answer choices.
	Options []string `json:"options"`

	// Correct is the index into Options of the right answer (0-3).
	Correct int `json:"correct"`

	// Explanation is shown after the viewer answers.
	Explanation string `json:"explanation"`
}

// Segment is a contiguous time range of the source video.
type Segment struct {
	// Title names the segment, e.g. "Introduction to Topic".
	Title string `json:"title"`

	// Timestamp is the segment start in "MM:SS" (or "H:MM:SS") form.
	// Convert with ParseTimestamp / FormatTimestamp.
	Timestamp string `json:"timestamp"`

	// Concepts are the 2-3 key ideas covered by the segment.
	Concepts []string `json:"concepts"`

	// Questions are asked when playback reaches the segment.
	Questions []Question `json:"questions"`
}

// Course is the validated output of the generation pipeline. It is
// immutable after generation; playback only reads it.
type Course struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	// Duration is a human-readable estimate, e.g. "15 minutes".
	Duration string `json:"duration"`

	Segments []Segment `json:"segments"`
}

// QuestionCount returns the total number of questions across all segments.
func (c *Course) QuestionCount() int {
	n := 0
	for _, s := range c.Segments {
		n += len(s.Questions)
	}
	return n
}

// StartSeconds returns the segment start converted to seconds.
// Returns 0 for an unparseable timestamp.
func (s *Segment) StartSeconds() int {
	return ParseTimestamp(s.Timestamp)
}
