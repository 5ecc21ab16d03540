package breakdown

// GenerateInput describes one breakdown request.
type GenerateInput struct {
	Task           string // text of the task being broken down
	SubtaskFlatten string // existing subtask texts the backend must not repeat
	Count          int    // requested number of subtasks, 1..5
	Intensity      int    // detail level 1..5, clamped
}

// GenerateOutput carries the generated subtask texts.
type GenerateOutput struct {
	Subtasks  []string
	ParseTier string // "json" or "fallback"
}

// Parse tier labels.
const (
	TierJSON     = "json"
	TierFallback = "fallback"
)
