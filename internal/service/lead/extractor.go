package lead

import (
	"encoding/json"
	"strings"
)

// Markers delimiting the structured block the agent appends to its reply.
const (
	StartMarker = "[LEAD_DATA]"
	EndMarker   = "[/LEAD_DATA]"
)

// Extract scans a model reply for a lead block and decodes it. It returns
// the raw string-to-string fields and true only when both markers are
// present in order and the interior parses as a JSON object of strings;
// anything else means "no lead this turn", never an error, so a malformed
// block cannot break the conversation.
func Extract(text string) (map[string]string, bool) {
	start := strings.Index(text, StartMarker)
	if start < 0 {
		return nil, false
	}
	end := strings.Index(text, EndMarker)
	if end < start+len(StartMarker) {
		return nil, false
	}

	raw := strings.TrimSpace(text[start+len(StartMarker) : end])
	var fields map[string]string
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// CleanDisplay strips the lead block from a reply for user display.
// It triggers on the start marker alone, independently of whether
// extraction succeeded: a reply with a dangling start marker still loses
// its tail. Without the marker the text passes through unchanged.
func CleanDisplay(text string) string {
	if i := strings.Index(text, StartMarker); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}
