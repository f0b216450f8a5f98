package coursegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a course designer turning educational YouTube videos into interactive courses.

Rules:
- Respond with ONLY a valid JSON object. No markdown fences, no commentary before or after.
- Base the course on the video the URL points to: its title, topic, and typical structure.
- Timestamps must be realistic and strictly increasing ("00:00", "02:30", "05:15", ...).
- Questions must test understanding of the segment they belong to, not trivia.
- Explanations must say why the correct option is right, in one or two sentences.
- The correct answer index (0-3) must point at the right option.`

// buildPrompt constructs the user instruction for one video.
func buildPrompt(videoURL string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze this YouTube video URL: %s\n\n", videoURL)
	b.WriteString("Create a course structure with these requirements:\n\n")
	b.WriteString("1. Extract the video title and create a course title\n")
	b.WriteString("2. Write a 2-sentence course description\n")
	b.WriteString("3. Estimate the video duration (e.g. \"15 minutes\", \"1 hour 30 minutes\")\n")
	fmt.Fprintf(&b, "4. Break the video into %d-%d logical segments with timestamps\n", cfg.MinSegments, cfg.MaxSegments)
	b.WriteString("5. For each segment, identify 2-3 key concepts\n")
	b.WriteString("6. Generate 2-3 multiple choice questions per segment, each with exactly 4 options\n\n")
	b.WriteString("Return ONLY a JSON object with this exact structure:\n\n")
	b.WriteString(exampleJSON)

	return b.String()
}

const exampleJSON = `{
  "title": "Course title based on video content",
  "description": "Two sentence description of what students will learn from this video course.",
  "duration": "15 minutes",
  "segments": [
    {
      "title": "Introduction to Topic",
      "timestamp": "00:00",
      "concepts": ["concept1", "concept2"],
      "questions": [
        {
          "type": "multiple_choice",
          "question": "What is the main topic discussed in this segment?",
          "options": ["Option A", "Option B", "Option C", "Option D"],
          "correct": 0,
          "explanation": "Option A is correct because..."
        }
      ]
    }
  ]
}`
