package coursegen

import "github.com/jfuginay/courseforge-ai/internal/llm"

// CourseSchema is the JSON Schema the extracted model output must
// conform to before it is accepted as a course.
var CourseSchema = &llm.Schema{
	Name:        "course-data",
	Description: "An interactive course derived from a video: segments with concepts and multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Course title derived from the video",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Two-sentence course description",
			},
			"duration": map[string]any{
				"type":        "string",
				"description": "Human-readable duration estimate, e.g. \"15 minutes\"",
			},
			"segments": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type": "string",
						},
						"timestamp": map[string]any{
							"type":        "string",
							"description": "Segment start as MM:SS",
						},
						"concepts": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items":    map[string]any{"type": "string"},
						},
						"questions": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"type": map[string]any{
										"type": "string",
										"enum": []any{"multiple_choice"},
									},
									"question": map[string]any{
										"type": "string",
									},
									"options": map[string]any{
										"type":     "array",
										"minItems": 4,
										"maxItems": 4,
										"items":    map[string]any{"type": "string"},
									},
									"correct": map[string]any{
										"type":    "integer",
										"minimum": 0,
										"maximum": 3,
									},
									"explanation": map[string]any{
										"type": "string",
									},
								},
								"required": []any{"type", "question", "options", "correct", "explanation"},
							},
						},
					},
					"required": []any{"title", "timestamp", "concepts", "questions"},
				},
			},
		},
		"required": []any{"title", "description", "duration", "segments"},
	},
}
