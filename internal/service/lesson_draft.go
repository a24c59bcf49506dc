package service

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DraftSource tells how a LessonDraft was obtained from model output.
type DraftSource int

const (
	// DraftParsed means the output was a JSON object.
	DraftParsed DraftSource = iota + 1
	// DraftFallback means the output was not a JSON object and the draft was
	// built from the raw text and fixed defaults.
	DraftFallback
)

// String implements fmt.Stringer.
func (s DraftSource) String() string {
	switch s {
	case DraftParsed:
		return "parsed"
	case DraftFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// fallbackContentRunes bounds the raw text copied into a fallback draft.
const fallbackContentRunes = 400

// Fixed fields of a fallback draft.
var (
	fallbackKeyPoints   = []string{"Understand the basics", "Apply in real life", "Track progress"}
	fallbackRealExample = "Example scenario based on this concept."
	fallbackDailyTip    = "Start small and stay consistent."
)

// LessonDraft holds the lesson fields extracted from generator output.
type LessonDraft struct {
	Source      DraftSource
	Title       string
	Content     string
	KeyPoints   []string
	RealExample string
	DailyTip    string
}

// ParseLessonDraft interprets raw model output for a lesson on topic.
//
// Output that is a JSON object, optionally wrapped in a Markdown code fence,
// yields a DraftParsed draft; fields that are absent or null take their
// defaults (title = topic, empty text, no key points). Anything else yields a
// DraftFallback draft whose content is the first 400 runes of raw.
func ParseLessonDraft(topic, raw string) LessonDraft {
	fields, ok := decodeObject(unwrapCodeFence(raw))
	if !ok {
		return LessonDraft{
			Source:      DraftFallback,
			Title:       topic,
			Content:     truncateRunes(raw, fallbackContentRunes),
			KeyPoints:   append([]string(nil), fallbackKeyPoints...),
			RealExample: fallbackRealExample,
			DailyTip:    fallbackDailyTip,
		}
	}

	return LessonDraft{
		Source:      DraftParsed,
		Title:       textField(fields, "title", topic),
		Content:     textField(fields, "content", ""),
		KeyPoints:   listField(fields, "key_points"),
		RealExample: textField(fields, "real_example", ""),
		DailyTip:    textField(fields, "daily_tip", ""),
	}
}

// unwrapCodeFence strips a surrounding ``` or ```json fence.
func unwrapCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line including any language tag.
	newline := strings.IndexByte(s, '\n')
	if newline < 0 {
		return s
	}
	s = s[newline+1:]

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func decodeObject(s string) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace([]byte(s))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// textField returns a string field. Non-string JSON values are kept as their
// JSON text.
func textField(fields map[string]json.RawMessage, name, def string) string {
	raw, ok := fields[name]
	if !ok || isNullJSON(raw) {
		return def
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// listField returns a list of strings. A single string becomes a one-element
// list; non-string elements are kept as their JSON text.
func listField(fields map[string]json.RawMessage, name string) []string {
	raw, ok := fields[name]
	if !ok || isNullJSON(raw) {
		return []string{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			return []string{single}
		}
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if isNullJSON(item) {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(bytes.TrimSpace(item)))
	}
	return out
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
