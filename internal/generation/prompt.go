package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
)

// LessonSystemPrompt is the system instruction sent with every lesson request.
const LessonSystemPrompt = "You are a financial education expert creating engaging, practical lessons " +
	"for ages 13-25. Focus on real-world examples, simple explanations, and actionable advice."

//go:embed prompts/lesson.tmpl
var defaultLessonTemplate string

// promptData is the data passed to the lesson prompt template.
type promptData struct {
	Topic      string
	Difficulty string
}

// PromptBuilder renders lesson requests from a text/template.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the lesson template at path. An empty path selects
// the embedded default template.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	source := defaultLessonTemplate
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v", ErrInvalidConfig, path, err)
		}
		source = string(content)
	}

	tmpl, err := template.New("lesson").Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// LessonRequest builds the generation request for a lesson on topic.
func (b *PromptBuilder) LessonRequest(topic, difficulty string) (Request, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{Topic: topic, Difficulty: difficulty}); err != nil {
		return Request{}, fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return Request{
		SystemPrompt: LessonSystemPrompt,
		Prompt:       buf.String(),
		Difficulty:   difficulty,
		SessionID:    "lesson_" + topic,
	}, nil
}
