package coursegen

import "github.com/jfuginay/courseforge-ai/internal/course"

// FallbackCourse returns the deterministic minimal course served when
// the model's output cannot be parsed or validated. It always passes
// the structural invariants.
func FallbackCourse() *course.Course {
	return &course.Course{
		Title: "Sample Course from Video",
		Description: "This is a sample course generated from the provided video. " +
			"The AI analysis will provide more detailed content based on the actual video content.",
		Duration: "30 minutes",
		Segments: []course.Segment{
			{
				Title:     "Introduction",
				Timestamp: "00:00",
				Concepts:  []string{"Basic concepts", "Overview", "Learning objectives"},
				Questions: []course.Question{
					{
						Type:   course.TypeMultipleChoice,
						Prompt: "What is the main focus of this video?",
						Options: []string{
							"Introduction to the topic",
							"Advanced techniques",
							"Conclusion",
							"References",
						},
						Correct: 0,
						Explanation: "The introduction segment typically focuses on introducing " +
							"the main topic and setting learning objectives.",
					},
				},
			},
			{
				Title:     "Main Content",
				Timestamp: "05:00",
				Concepts:  []string{"Core principles", "Key techniques", "Practical examples"},
				Questions: []course.Question{
					{
						Type:   course.TypeMultipleChoice,
						Prompt: "Which principle is most fundamental?",
						Options: []string{
							"Advanced theory",
							"Basic foundation",
							"Complex applications",
							"Future trends",
						},
						Correct: 1,
						Explanation: "Basic foundation is most fundamental as it provides the " +
							"groundwork for understanding more complex concepts.",
					},
				},
			},
		},
	}
}
