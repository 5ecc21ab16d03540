package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"tasktree/internal/breakdown"
)

// numberPrefix matches a leading "12. " style numbering on a line.
var numberPrefix = regexp.MustCompile(`^\d+\.\s*`)

// parseSubtasks turns a raw backend response into subtask texts.
// Tier 1 strips an optional markdown code fence and parses a JSON array
// of strings. Tier 2, used only when tier 1 fails, splits on newlines,
// strips numbering prefixes and drops blank lines. The tier label is
// returned so callers can log and count which path fired.
func parseSubtasks(raw string) ([]string, string) {
	if subtasks, err := parseJSONArray(raw); err == nil {
		return subtasks, breakdown.TierJSON
	}
	return parseLines(raw), breakdown.TierFallback
}

func parseJSONArray(raw string) ([]string, error) {
	cleaned := stripCodeFence(raw)
	var subtasks []string
	if err := json.Unmarshal([]byte(cleaned), &subtasks); err != nil {
		return nil, err
	}
	return subtasks, nil
}

// stripCodeFence removes a ```json (or bare ```) fence wrapping the body.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func parseLines(raw string) []string {
	var subtasks []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = numberPrefix.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		subtasks = append(subtasks, line)
	}
	return subtasks
}
